package translation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xsoar-content/k8s-automation/util"
)

const (
	// maxRuleNameLen is the longest rule name the firewall accepts verbatim.
	maxRuleNameLen = 53
	// maxRuleLabelLen is the longest trailing label kept in front of a hashed rule name.
	maxRuleLabelLen = 30

	svcObjNameSegmentLen = 13
	svcObjHashLen        = 10
	svcObjNameFormat     = "%s-%s-%s-%d-%s"
	svcObjHashFormat     = "%s-%s-%s-%s-%d-%s"
)

// GenSecurityPolicyRuleName returns the security rule name for a fully qualified
// NetworkPolicy name ("<namespace>.<policyName>").
// Names up to 53 characters are returned as is. Longer names are replaced by their md5
// digest, prefixed with the last dot separated label when that label has at most 30 characters.
func GenSecurityPolicyRuleName(fqrn string) string {
	if utf8.RuneCountInString(fqrn) <= maxRuleNameLen {
		return fqrn
	}

	digest := util.MD5Hex(fqrn)
	labels := strings.Split(fqrn, util.TagSeparator)
	label := labels[len(labels)-1]
	if utf8.RuneCountInString(label) <= maxRuleLabelLen {
		return label + "-" + digest
	}
	return digest
}

// svcObjPortTypeCode returns the short code for a service port type.
func svcObjPortTypeCode(portType PortType) string {
	switch portType {
	case NodePort:
		return "np"
	case TargetPort:
		return "tgt"
	case LoadBalancer:
		return "port"
	default:
		return "port"
	}
}

// GenSvcObjName returns the name of the service, address and inbound NAT objects
// generated for a Kubernetes service port.
// It is our contract to format "<namespace:13>-<svc_name:13>-<type>-<port>-<hash:10>",
// e.g. "kube-system-kube-dns-tgt-53-4e5c971725".
// The hash covers every field, so only the truncated namespace and service name may collide.
func GenSvcObjName(clusterName string, port ServicePort) string {
	code := svcObjPortTypeCode(port.PortType)
	hashInput := fmt.Sprintf(svcObjHashFormat, clusterName, port.Namespace, port.SvcName, code, port.Port, port.Protocol)
	hash := util.MD5Hex(hashInput)[:svcObjHashLen]
	return fmt.Sprintf(svcObjNameFormat,
		util.Truncate(port.Namespace, svcObjNameSegmentLen),
		util.Truncate(port.SvcName, svcObjNameSegmentLen),
		code,
		port.Port,
		hash,
	)
}
