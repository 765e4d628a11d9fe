package source

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	"github.com/xsoar-content/k8s-automation/pkg/translation"
	"github.com/xsoar-content/k8s-automation/util"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
)

// sniffLen is how much of the document is read to tell JSON from YAML.
const sniffLen = 4096

var (
	// ErrEmptyDocument is returned when there is nothing to decode.
	ErrEmptyDocument = errors.New("empty network policy document")
	// ErrNotAnObject is returned when the document is valid but not an object.
	ErrNotAnObject = errors.New("network policy document is not an object")
)

// Decode parses a JSON or YAML document holding a NetworkPolicy.
// A document starting with "{" is read as JSON without going through YAML.
// An envelope with a "raw_object" field is replaced by the inner object.
// A list document (kind ending in "List" with "items") yields one object per item.
func Decode(data []byte) ([]map[string]interface{}, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyDocument
	}

	var doc interface{}
	if err := utilyaml.NewYAMLOrJSONDecoder(bytes.NewReader(data), sniffLen).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode network policy document")
	}
	obj, ok := doc.(map[string]interface{})
	if !ok {
		return nil, ErrNotAnObject
	}
	obj = translation.UnwrapRawObject(obj)

	if !isList(obj) {
		return []map[string]interface{}{obj}, nil
	}

	items, _ := obj[util.ItemsField].([]interface{})
	policies := make([]map[string]interface{}, 0, len(items))
	for i, item := range items {
		itemObj, ok := item.(map[string]interface{})
		if !ok {
			return nil, errors.Wrapf(ErrNotAnObject, "list item %d", i)
		}
		policies = append(policies, translation.UnwrapRawObject(itemObj))
	}
	return policies, nil
}

func isList(obj map[string]interface{}) bool {
	kind, _ := obj[util.KindField].(string)
	_, hasItems := obj[util.ItemsField]
	return strings.HasSuffix(kind, "List") && hasItems
}
