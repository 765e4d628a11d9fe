package translation

import (
	"fmt"
	"strings"

	"github.com/xsoar-content/k8s-automation/util"
)

// peerSelectorKeys are the NetworkPolicyPeer fields whose matchLabels become DAG tags, in visiting order.
var peerSelectorKeys = []string{util.NamespaceSelectorField, util.PodSelectorField}

// dagTag returns the "<namespace>.<key>.<value>" tag the firewall matches a pod label against.
func dagTag(namespace, key string, value interface{}) string {
	return fmt.Sprintf("%s.%s.%v", namespace, key, value)
}

func appendLabelTags(tags []string, namespace string, labels map[string]interface{}) []string {
	for _, k := range util.SortedKeys(labels) {
		tags = append(tags, dagTag(namespace, k, labels[k]))
	}
	return tags
}

// ingressPeers returns the peers of the first ingress rule.
// "_from" is read when "from" is absent or empty.
func ingressPeers(policy map[string]interface{}) []interface{} {
	rule := firstIngressRule(policy)
	if rule == nil {
		return nil
	}
	if peers := nestedSlice(rule, util.FromField); len(peers) > 0 {
		return peers
	}
	return nestedSlice(rule, util.FromFallbackField)
}

// srcTags collects tags from the pod and namespace selectors of the first ingress rule.
// A non-null selector without matchLabels ends the scan; tags collected before it are kept.
func srcTags(policy map[string]interface{}, namespace string) []string {
	tags := []string{}
	for _, p := range ingressPeers(policy) {
		peer, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		for _, key := range peerSelectorKeys {
			selector, ok := peer[key]
			if !ok || selector == nil {
				continue
			}
			selectorMap, _ := selector.(map[string]interface{})
			labels, found := selectorMap[util.MatchLabelsField]
			if !found {
				return tags
			}
			labelMap, _ := labels.(map[string]interface{})
			tags = appendLabelTags(tags, namespace, labelMap)
		}
	}
	return tags
}

// dstTags collects tags from spec.podSelector.matchLabels.
func dstTags(policy map[string]interface{}, namespace string) []string {
	labels := nestedMap(policy, util.SpecField, util.PodSelectorField, util.MatchLabelsField)
	return appendLabelTags([]string{}, namespace, labels)
}

// GenDAGMatchCriteria returns the match expression of the dynamic address group on the given side of the rule.
// Tags have the form "<namespace>.<labelKey>.<labelValue>" and are joined with " OR ".
// Within one selector the tags are sorted by label key, not kept in document order.
// It returns "" when there is nothing to match, including when the selectors are absent.
func GenDAGMatchCriteria(policy map[string]interface{}, direction Direction, namespace string) string {
	var tags []string
	switch direction {
	case Src:
		tags = srcTags(policy, namespace)
	case Dst:
		tags = dstTags(policy, namespace)
	}
	return strings.Join(tags, util.MatchOrSeparator)
}
