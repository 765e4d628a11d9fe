package translation

import (
	"github.com/xsoar-content/k8s-automation/util"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// nestedField returns the value at fields, or nil if any level is absent or not an object.
func nestedField(obj map[string]interface{}, fields ...string) interface{} {
	val, found, err := unstructured.NestedFieldNoCopy(obj, fields...)
	if err != nil || !found {
		return nil
	}
	return val
}

// nestedMap returns the object at fields, or nil.
func nestedMap(obj map[string]interface{}, fields ...string) map[string]interface{} {
	m, _ := nestedField(obj, fields...).(map[string]interface{})
	return m
}

// nestedSlice returns the list at fields, or nil.
func nestedSlice(obj map[string]interface{}, fields ...string) []interface{} {
	s, _ := nestedField(obj, fields...).([]interface{})
	return s
}

// firstIngressRule returns spec.ingress[0], or nil when there is no ingress rule.
// Only the first rule is ever consulted.
func firstIngressRule(policy map[string]interface{}) map[string]interface{} {
	ingress := nestedSlice(policy, util.SpecField, util.IngressField)
	if len(ingress) == 0 {
		return nil
	}
	rule, _ := ingress[0].(map[string]interface{})
	return rule
}
