package scripts

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xsoar-content/k8s-automation/metrics"
	"github.com/xsoar-content/k8s-automation/pkg/automation"
	"github.com/xsoar-content/k8s-automation/pkg/source"
	"github.com/xsoar-content/k8s-automation/pkg/translation"
	"github.com/xsoar-content/k8s-automation/util"
	autoerrors "github.com/xsoar-content/k8s-automation/util/errors"
)

const allowDNS = `{
  "metadata": {"namespace": "kube-system", "name": "allow-dns"},
  "spec": {
    "podSelector": {"matchLabels": {"app": "dns"}},
    "ingress": [{"from": [{"podSelector": {"matchLabels": {"app": "client"}}}], "ports": [{"port": 53, "protocol": "UDP"}]}]
  }
}`

func TestMain(m *testing.M) {
	metrics.InitializeAll()
	os.Exit(m.Run())
}

func TestK8sToPanos(t *testing.T) {
	before, err := metrics.GetConvertedObjects(metrics.ServiceKind)
	require.NoError(t, err)

	entry, err := NewK8sToPanos(nil, "").Run(context.Background(), automation.Args{
		util.KubernetesNetworkPolicyArg: allowDNS,
		util.ClusterNameArg:             "cluster1",
	})
	require.NoError(t, err)
	require.Equal(t, automation.EntryTypeNote, entry.Type)
	require.Equal(t, automation.FormatJSON, entry.ContentsFormat)

	result, ok := entry.Contents.(translation.Result)
	require.True(t, ok)
	require.Equal(t, "kube-system.allow-dns", result.ConvertedPolicy.Rule.Name)
	require.Equal(t, []string{"udp-53"}, result.ConvertedPolicy.Rule.Service)
	require.Equal(t, "kube-system.app.client", result.ConvertedPolicy.DAG[0].Match)
	require.Equal(t, result, entry.EntryContext)

	after, err := metrics.GetConvertedObjects(metrics.ServiceKind)
	require.NoError(t, err)
	require.Equal(t, before+1, after)
}

func TestK8sToPanosInputs(t *testing.T) {
	tests := []struct {
		name     string
		policy   string
		wantRule string
	}{
		{
			name:     "raw object envelope",
			policy:   `{"name": "allow-dns", "raw_object": ` + allowDNS + `}`,
			wantRule: "kube-system.allow-dns",
		},
		{
			name:     "empty raw object",
			policy:   `{"raw_object": {}, "metadata": {"namespace": "default", "name": "web"}}`,
			wantRule: "default.web",
		},
		{
			name:     "yaml",
			policy:   "metadata:\n  namespace: default\n  name: deny-all\nspec:\n  podSelector: {}\n",
			wantRule: "default.deny-all",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			entry, err := NewK8sToPanos(nil, "c").Run(context.Background(), automation.Args{
				util.KubernetesNetworkPolicyArg: tt.policy,
			})
			require.NoError(t, err)
			require.Equal(t, tt.wantRule, entry.Contents.(translation.Result).ConvertedPolicy.Rule.Name)
		})
	}
}

func TestK8sToPanosErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    automation.Args
		wantOp  string
		wantErr error
	}{
		{
			name:    "missing policy",
			args:    automation.Args{util.ClusterNameArg: "c"},
			wantOp:  autoerrors.ParseArguments,
			wantErr: autoerrors.ErrMissingArgument,
		},
		{
			name:    "empty policy",
			args:    automation.Args{util.KubernetesNetworkPolicyArg: ""},
			wantOp:  autoerrors.ParseArguments,
			wantErr: autoerrors.ErrMissingArgument,
		},
		{
			name:    "not an object",
			args:    automation.Args{util.KubernetesNetworkPolicyArg: "[1, 2]"},
			wantOp:  autoerrors.DecodePolicy,
			wantErr: source.ErrNotAnObject,
		},
		{
			name:    "list",
			args:    automation.Args{util.KubernetesNetworkPolicyArg: `{"kind": "List", "items": [` + allowDNS + `,` + allowDNS + `]}`},
			wantOp:  autoerrors.DecodePolicy,
			wantErr: ErrNotSinglePolicy,
		},
		{
			name:    "missing namespace",
			args:    automation.Args{util.KubernetesNetworkPolicyArg: `{"metadata": {"name": "web"}}`},
			wantOp:  autoerrors.AnalyzePolicy,
			wantErr: translation.ErrMissingNamespace,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewK8sToPanos(nil, "c").Run(context.Background(), tt.args)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)

			var aerr *autoerrors.AutomationError
			require.True(t, errors.As(err, &aerr))
			require.Equal(t, util.K8sToPanosScript, aerr.Script)
			require.Equal(t, tt.wantOp, aerr.Operation)
		})
	}
}

func TestStripAccentMarks(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: "café", want: "cafe"},
		{value: "naïve", want: "naive"},
		{value: "Ångström", want: "Angstrom"},
		{value: "plain", want: "plain"},
		{value: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			entry, err := NewStripAccentMarks(nil).Run(context.Background(), automation.Args{util.ValueArg: tt.value})
			require.NoError(t, err)
			require.Equal(t, automation.FormatText, entry.ContentsFormat)
			require.Equal(t, tt.want, entry.Contents)
		})
	}
}

func TestStripAccentMarksMissingValue(t *testing.T) {
	_, err := NewStripAccentMarks(nil).Run(context.Background(), automation.Args{})
	require.ErrorIs(t, err, autoerrors.ErrMissingArgument)
	require.Equal(t, autoerrors.ParseArguments, autoerrors.OperationOf(err))
}

func TestDefault(t *testing.T) {
	r := Default(nil, "cluster1")
	require.Equal(t, []string{util.K8sToPanosScript, util.StripAccentMarksScript}, r.Names())

	entry, err := r.Run(context.Background(), util.K8sToPanosScript, automation.Args{
		util.KubernetesNetworkPolicyArg: `{"metadata": {"namespace": "default", "name": "web"}}`,
	})
	require.NoError(t, err)
	require.Equal(t, "default.web", entry.Contents.(translation.Result).ConvertedPolicy.Rule.Name)
}
