package translation

import (
	"fmt"

	"github.com/xsoar-content/k8s-automation/util"
)

// GetIPBlocks returns the CIDR blocks of the ipBlock peers in the first ingress rule.
// Only the source side is supported; any other direction returns an empty list.
// A cidr given as a list is returned immediately as the whole result and later peers are not read.
// An ipBlock without cidr ends the scan.
func GetIPBlocks(policy map[string]interface{}, direction Direction) []string {
	ipBlocks := []string{}
	if direction != Src {
		return ipBlocks
	}

	rule := firstIngressRule(policy)
	if rule == nil {
		return ipBlocks
	}

	for _, p := range nestedSlice(rule, util.FromField) {
		peer, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		ipBlock, ok := peer[util.IPBlockField]
		if !ok {
			continue
		}
		ipBlockMap, _ := ipBlock.(map[string]interface{})
		cidr, found := ipBlockMap[util.CIDRField]
		if !found {
			return ipBlocks
		}
		switch c := cidr.(type) {
		case []interface{}:
			return cidrList(c)
		case []string:
			return c
		case string:
			ipBlocks = append(ipBlocks, c)
		case nil:
		default:
			ipBlocks = append(ipBlocks, fmt.Sprint(c))
		}
	}
	return ipBlocks
}

func cidrList(l []interface{}) []string {
	cidrs := make([]string, 0, len(l))
	for _, c := range l {
		cidrs = append(cidrs, fmt.Sprint(c))
	}
	return cidrs
}
