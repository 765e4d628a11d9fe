package translation

import (
	"math"
	"strconv"
	"strings"

	"github.com/xsoar-content/k8s-automation/util"
	"k8s.io/apimachinery/pkg/util/intstr"
)

// portValue converts a decoded port value into an IntOrString.
// JSON decoding yields float64 for numbers, typed conversion yields int64.
// Numbers outside the int32 range keep their digits as a string port.
func portValue(v interface{}) *intstr.IntOrString {
	var port intstr.IntOrString
	switch p := v.(type) {
	case nil:
		return nil
	case int:
		port = intPortValue(int64(p))
	case int32:
		port = intstr.FromInt(int(p))
	case int64:
		port = intPortValue(p)
	case float64:
		if p != math.Trunc(p) || p < math.MinInt32 || p > math.MaxInt32 {
			port = intstr.FromString(strconv.FormatFloat(p, 'f', -1, 64))
		} else {
			port = intstr.FromInt(int(p))
		}
	case string:
		port = intstr.FromString(p)
	default:
		return nil
	}
	return &port
}

func intPortValue(p int64) intstr.IntOrString {
	if p < math.MinInt32 || p > math.MaxInt32 {
		return intstr.FromString(strconv.FormatInt(p, 10))
	}
	return intstr.FromInt(int(p))
}

// portProtocol returns the lower-cased protocol of a port entry, "tcp" when absent.
func portProtocol(entry map[string]interface{}) string {
	protocol, ok := entry[util.ProtocolField].(string)
	if !ok {
		return util.DefaultProtocol
	}
	return strings.ToLower(protocol)
}

// serviceObjectName returns "<protocol>-<port>", e.g. "tcp-53".
// An entry without a port matches every port and is named "<protocol>-any".
func serviceObjectName(protocol string, port *intstr.IntOrString) string {
	if port == nil {
		return protocol + "-" + util.AnyPort
	}
	return protocol + "-" + port.String()
}

// GenServiceObjects returns one service object per port of the first ingress rule.
// It returns an empty list when the policy has no ingress rule or the rule has no ports.
func GenServiceObjects(policy map[string]interface{}) []ServiceObject {
	services := []ServiceObject{}
	rule := firstIngressRule(policy)
	if rule == nil {
		return services
	}

	for _, p := range nestedSlice(rule, util.PortsField) {
		entry, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		port := portValue(entry[util.PortField])
		protocol := portProtocol(entry)
		services = append(services, ServiceObject{
			Name:     serviceObjectName(protocol, port),
			Port:     port,
			Protocol: protocol,
		})
	}
	return services
}
