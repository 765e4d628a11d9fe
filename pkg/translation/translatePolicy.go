package translation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xsoar-content/k8s-automation/util"
	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

var (
	// ErrMissingNamespace is returned when the policy has no metadata.namespace.
	ErrMissingNamespace = errors.New("network policy has no metadata.namespace")
	// ErrMissingName is returned when the policy has no metadata.name.
	ErrMissingName = errors.New("network policy has no metadata.name")
	// ErrInvalidMetadata is returned when metadata.namespace or metadata.name is not a string.
	ErrInvalidMetadata = errors.New("network policy metadata.namespace and metadata.name must be strings")
	// ErrNilPolicy is returned when a typed policy is nil.
	ErrNilPolicy = errors.New("nil network policy")
)

const ruleDescriptionFormat = "%s\n\nThis rule was generated via XSOAR automation and should NOT be edited directly."

// requiredMetadata returns metadata.namespace and metadata.name.
func requiredMetadata(policy map[string]interface{}) (namespace, name string, err error) {
	ns := nestedField(policy, util.MetadataField, util.NamespaceField)
	if ns == nil {
		return "", "", ErrMissingNamespace
	}
	n := nestedField(policy, util.MetadataField, util.NameField)
	if n == nil {
		return "", "", ErrMissingName
	}

	namespace, nsOK := ns.(string)
	name, nameOK := n.(string)
	if !nsOK || !nameOK {
		return "", "", ErrInvalidMetadata
	}
	return namespace, name, nil
}

// dag returns the dynamic address group named name, or an empty group when match is empty.
func dag(name, match, description string) DAG {
	if match == "" {
		return DAG{}
	}
	return DAG{
		Name:        name,
		Match:       match,
		Description: description,
	}
}

// ruleAddress returns the address list of one side of the rule: the DAG first, if any, then the CIDR blocks.
func ruleAddress(group DAG, ipBlocks []string) string {
	addresses := make([]string, 0, len(ipBlocks)+1)
	if !group.IsEmpty() {
		addresses = append(addresses, group.Name)
	}
	addresses = append(addresses, ipBlocks...)
	return strings.Join(addresses, util.AddressSeparator)
}

// AnalyzePolicy translates a NetworkPolicy object into firewall objects.
// clusterName is accepted so every script receives the host arguments unchanged; the objects
// derived from a policy do not depend on it.
func AnalyzePolicy(clusterName string, policy map[string]interface{}) (*ConvertedPolicy, error) {
	namespace, policyName, err := requiredMetadata(policy)
	if err != nil {
		return nil, err
	}

	// rule names are limited to 63 characters.
	fqrn := namespace + util.TagSeparator + policyName
	ruleName := GenSecurityPolicyRuleName(fqrn)
	ruleDescription := fmt.Sprintf(ruleDescriptionFormat, fqrn)

	// destination CIDR blocks are not supported.
	dstIPBlocks := []string{}
	srcIPBlocks := GetIPBlocks(policy, Src)

	srcDAG := dag(ruleName+util.TagSeparator+string(Src), GenDAGMatchCriteria(policy, Src, namespace), fqrn)
	dstDAG := dag(ruleName+util.TagSeparator+string(Dst), GenDAGMatchCriteria(policy, Dst, namespace), fqrn)

	services := GenServiceObjects(policy)
	serviceNames := make([]string, 0, len(services))
	for _, svc := range services {
		serviceNames = append(serviceNames, svc.Name)
	}

	return &ConvertedPolicy{
		Rule: SecurityRule{
			Name:                 ruleName,
			Service:              serviceNames,
			FromZone:             util.AnyZone,
			ToZone:               util.AnyZone,
			Application:          GetAppID(policy),
			Src:                  ruleAddress(srcDAG, srcIPBlocks),
			Dst:                  ruleAddress(dstDAG, dstIPBlocks),
			Description:          ruleDescription,
			VulnerabilityProfile: GetVulnerabilityProfile(policy),
			AntiSpywareProfile:   GetAntiSpywareProfile(policy),
			AntivirusProfile:     GetAntivirusProfile(policy),
			URLFilteringProfile:  GetURLFilteringProfile(policy),
			FileBlockingProfile:  GetFileBlockingProfile(policy),
			DataFilteringProfile: GetDataFilteringProfile(policy),
			LogProfile:           GetLogProfile(policy),
		},
		DAG:      [2]DAG{srcDAG, dstDAG},
		Services: services,
	}, nil
}

// AnalyzeNetworkPolicy translates a typed NetworkPolicy object.
func AnalyzeNetworkPolicy(clusterName string, npObj *networkingv1.NetworkPolicy) (*ConvertedPolicy, error) {
	policy, err := ToUnstructured(npObj)
	if err != nil {
		return nil, err
	}
	return AnalyzePolicy(clusterName, policy)
}

// ToUnstructured converts a typed NetworkPolicy object to the unstructured form AnalyzePolicy reads.
func ToUnstructured(npObj *networkingv1.NetworkPolicy) (map[string]interface{}, error) {
	if npObj == nil {
		return nil, ErrNilPolicy
	}
	policy, err := runtime.DefaultUnstructuredConverter.ToUnstructured(npObj)
	if err != nil {
		return nil, fmt.Errorf("failed to convert network policy %s/%s: %w", npObj.Namespace, npObj.Name, err)
	}
	return policy, nil
}

// UnwrapRawObject returns the object stored under "raw_object" when obj is an envelope
// around the policy, and obj itself otherwise.
func UnwrapRawObject(obj map[string]interface{}) map[string]interface{} {
	if raw, ok := obj[util.RawObjectField].(map[string]interface{}); ok && len(raw) > 0 {
		return raw
	}
	return obj
}
