package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xsoar-content/k8s-automation/config"
	"github.com/xsoar-content/k8s-automation/pkg/automation"
	"github.com/xsoar-content/k8s-automation/util"
	"sigs.k8s.io/yaml"
)

const (
	allowDNSFile    = "testdata/allow-dns.json"
	policyListFile  = "testdata/policies.yaml"
	configFile      = "testdata/config.json"
	nonExistingFile = "testdata/non-existing-file"

	quiet = "--log-level=error"
)

type testCases struct {
	name    string
	args    []string
	stdin   string
	wantErr bool
	wantOut []string
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCMD := NewRootCmd()
	b := bytes.NewBufferString("")
	rootCMD.SetOut(b)
	rootCMD.SetErr(bytes.NewBufferString(""))
	rootCMD.SetIn(strings.NewReader(stdin))
	rootCMD.SetArgs(args)
	err := rootCMD.Execute()
	return b.String(), err
}

func testCommand(t *testing.T, tests []*testCases) {
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.ConfigEnvPath, nonExistingFile)
			out, err := execute(t, tt.stdin, tt.args...)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			for _, want := range tt.wantOut {
				require.Contains(t, out, want)
			}
		})
	}
}

// entries decodes the JSON lines written by a command.
func entries(t *testing.T, out string) []automation.Entry {
	t.Helper()
	var result []automation.Entry
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var entry automation.Entry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		result = append(result, entry)
	}
	return result
}

func ruleName(t *testing.T, entry automation.Entry) string {
	t.Helper()
	contents, ok := entry.Contents.(map[string]interface{})
	require.True(t, ok)
	rule := contents["ConvertedPolicy"].(map[string]interface{})["Rule"].(map[string]interface{})
	return rule["Name"].(string)
}

func TestK8sToPanosCmd(t *testing.T) {
	baseArgs := []string{"k8stopanos", quiet}

	tests := []*testCases{
		{
			name:    "no source",
			args:    baseArgs,
			wantErr: true,
		},
		{
			name:    "both sources",
			args:    append(baseArgs, "--policy", allowDNSFile, "--from-cluster"),
			wantErr: true,
		},
		{
			name:    "missing kubeconfig",
			args:    append(baseArgs, "--from-cluster", "--kubeconfig", nonExistingFile),
			wantErr: true,
		},
		{
			name:    "missing file",
			args:    append(baseArgs, "--policy", nonExistingFile),
			wantErr: true,
		},
		{
			name:    "unexpected argument",
			args:    append(baseArgs, "--policy", allowDNSFile, "extra"),
			wantErr: true,
		},
		{
			name:    "bad output format",
			args:    append(baseArgs, "--policy", allowDNSFile, "--output", "xml"),
			wantErr: true,
		},
		{
			name:    "undecodable stdin",
			args:    append(baseArgs, "--policy", "-"),
			stdin:   "[1, 2, 3]",
			wantErr: true,
		},
		{
			name:    "policy without namespace",
			args:    append(baseArgs, "--policy", "-"),
			stdin:   `{"metadata": {"name": "web"}}`,
			wantErr: true,
		},
		{
			name:    "policy file",
			args:    append(baseArgs, "--policy", allowDNSFile, "--cluster-name", "c1"),
			wantOut: []string{`"Name":"kube-system.allow-dns"`, `"Match":"kube-system.app.client"`, `"Name":"udp-53"`},
		},
		{
			name:    "policy from stdin",
			args:    append(baseArgs, "-p", "-"),
			stdin:   `{"metadata": {"namespace": "default", "name": "web"}}`,
			wantOut: []string{`"Name":"default.web"`},
		},
		{
			name:    "yaml output",
			args:    append(baseArgs, "--policy", allowDNSFile, "-o", "yaml"),
			wantOut: []string{"---\n", "Name: kube-system.allow-dns"},
		},
	}

	testCommand(t, tests)
}

func TestK8sToPanosCmdList(t *testing.T) {
	t.Setenv(config.ConfigEnvPath, nonExistingFile)
	out, err := execute(t, "", "k8stopanos", quiet, "--policy", policyListFile)
	require.NoError(t, err)

	got := entries(t, out)
	require.Len(t, got, 2)
	require.Equal(t, "default.web", ruleName(t, got[0]))
	require.Equal(t, "default.deny-all", ruleName(t, got[1]))

	rule := got[0].Contents.(map[string]interface{})["ConvertedPolicy"].(map[string]interface{})["Rule"].(map[string]interface{})
	require.Equal(t, "10.0.0.0/8", rule["Src"])
	require.Equal(t, []interface{}{"tcp-443"}, rule["Service"])
}

func TestRunCmd(t *testing.T) {
	policy, err := os.ReadFile(allowDNSFile)
	require.NoError(t, err)

	tests := []*testCases{
		{
			name:    "no script",
			args:    []string{"run", quiet},
			wantErr: true,
		},
		{
			name:    "unknown script",
			args:    []string{"run", quiet, "NoSuchScript"},
			wantErr: true,
		},
		{
			name:    "malformed argument",
			args:    []string{"run", quiet, util.StripAccentMarksScript, "--arg", "value"},
			wantErr: true,
		},
		{
			name:    "missing argument file",
			args:    []string{"run", quiet, util.K8sToPanosScript, "--arg", util.KubernetesNetworkPolicyArg + "=@" + nonExistingFile},
			wantErr: true,
		},
		{
			name:    "missing required argument",
			args:    []string{"run", quiet, util.StripAccentMarksScript},
			wantErr: true,
		},
		{
			name:    "strip accents",
			args:    []string{"run", quiet, util.StripAccentMarksScript, "--arg", "value=Crème Brûlée"},
			wantOut: []string{`"Contents":"Creme Brulee"`},
		},
		{
			name:    "inline policy",
			args:    []string{"run", quiet, util.K8sToPanosScript, "-a", util.KubernetesNetworkPolicyArg + "=" + string(policy)},
			wantOut: []string{`"Name":"kube-system.allow-dns"`, `"Application":"dns"`},
		},
		{
			name: "policy from file",
			args: []string{
				"run", quiet, util.K8sToPanosScript,
				"--arg", util.KubernetesNetworkPolicyArg + "=@" + allowDNSFile,
				"--arg", util.ClusterNameArg + "=c1",
			},
			wantOut: []string{`"Name":"kube-system.allow-dns"`},
		},
	}

	testCommand(t, tests)
}

func TestStripAccentsCmd(t *testing.T) {
	tests := []*testCases{
		{
			name:    "no value",
			args:    []string{"strip-accents", quiet},
			wantErr: true,
		},
		{
			name:    "accented",
			args:    []string{"strip-accents", quiet, "naïve café"},
			wantOut: []string{`"Contents":"naive cafe"`},
		},
	}

	testCommand(t, tests)
}

func TestScriptsCmd(t *testing.T) {
	t.Setenv(config.ConfigEnvPath, nonExistingFile)
	out, err := execute(t, "", "scripts", quiet)
	require.NoError(t, err)
	require.Equal(t, util.K8sToPanosScript+"\n"+util.StripAccentMarksScript+"\n", out)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(out))
}

func TestConfigFile(t *testing.T) {
	t.Setenv(config.ConfigEnvPath, configFile)
	out, err := execute(t, "", "k8stopanos", "--policy", allowDNSFile)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "---\n"))

	var entry automation.Entry
	require.NoError(t, yaml.Unmarshal([]byte(strings.TrimPrefix(out, "---\n")), &entry))
	require.Equal(t, "kube-system.allow-dns", ruleName(t, entry))

	// flags take precedence over the config file
	out, err = execute(t, "", "k8stopanos", "--policy", allowDNSFile, "--output", "json")
	require.NoError(t, err)
	require.Len(t, entries(t, out), 1)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(config.ConfigEnvPath, configFile)
	cmd := newK8sToPanosCmd()
	require.NoError(t, cmd.Flags().Set(flagNamespace, "kube-system"))

	cfg, used, err := loadConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, configFile, used)
	require.Equal(t, "prod-east", cfg.ClusterName)
	require.Equal(t, "kube-system", cfg.Namespace)
	require.Equal(t, config.OutputYAML, cfg.OutputFormat)
	require.EqualValues(t, 2, cfg.Retry.Attempts)
	require.Equal(t, 10, cfg.Retry.DelayMillis)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(config.ConfigEnvPath, nonExistingFile)
	cfg, used, err := loadConfig(newScriptsCmd())
	require.NoError(t, err)
	require.Empty(t, used)
	require.Equal(t, config.DefaultConfig, cfg)
}

func TestMetricsFile(t *testing.T) {
	t.Setenv(config.ConfigEnvPath, nonExistingFile)
	path := filepath.Join(t.TempDir(), "k8s-automation.prom")

	_, err := execute(t, "", "strip-accents", quiet, "--metrics-file", path, "é")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `k8s_automation_script_runs_total{script="StripAccentMarksFromString"}`)
}

func TestParseArgs(t *testing.T) {
	args, err := parseArgs([]string{"value=a=b", "empty=", util.KubernetesNetworkPolicyArg + "=@" + allowDNSFile})
	require.NoError(t, err)
	require.Equal(t, "a=b", args["value"])
	require.Equal(t, "", args["empty"])
	require.Contains(t, args[util.KubernetesNetworkPolicyArg], `"allow-dns"`)

	_, err = parseArgs([]string{"=value"})
	require.ErrorIs(t, err, errInvalidArg)
}
