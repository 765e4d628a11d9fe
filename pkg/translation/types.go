package translation

import (
	"k8s.io/apimachinery/pkg/util/intstr"
)

// Direction selects which side of the security rule a helper works on.
type Direction string

const (
	Src Direction = "src"
	Dst Direction = "dst"
)

// PortType is the kind of Kubernetes service port an object name is generated for.
type PortType string

const (
	NodePort     PortType = "node_port"
	LoadBalancer PortType = "load_balancer"
	TargetPort   PortType = "target_port"
	OtherPort    PortType = "other"
)

// ServicePort describes one port of a Kubernetes service.
type ServicePort struct {
	Namespace string
	SvcName   string
	PortType  PortType
	Port      int32
	Protocol  string
}

// DAG is a dynamic address group. Its members are resolved by the firewall from the tags in Match.
// The zero value marshals to an empty JSON object.
type DAG struct {
	Name        string `json:"Name,omitempty"`
	Match       string `json:"Match,omitempty"`
	Description string `json:"Description,omitempty"`
}

// IsEmpty returns true if the group was not generated.
func (d DAG) IsEmpty() bool {
	return d == DAG{}
}

// ServiceObject is a named protocol and port pair.
type ServiceObject struct {
	Name     string              `json:"Name"`
	Port     *intstr.IntOrString `json:"Port"`
	Protocol string              `json:"Protocol"`
}

// SecurityRule is the firewall rule generated for one NetworkPolicy.
// Profile fields are nil when the policy carries no matching label.
type SecurityRule struct {
	Name                 string   `json:"Name"`
	Service              []string `json:"Service"`
	FromZone             string   `json:"FromZone"`
	ToZone               string   `json:"ToZone"`
	Application          *string  `json:"Application"`
	Src                  string   `json:"Src"`
	Dst                  string   `json:"Dst"`
	Description          string   `json:"Description"`
	VulnerabilityProfile *string  `json:"VulnerabilityProfile"`
	AntiSpywareProfile   *string  `json:"AntiSpywareProfile"`
	AntivirusProfile     *string  `json:"AntivirusProfile"`
	URLFilteringProfile  *string  `json:"UrlFilteringProfile"`
	FileBlockingProfile  *string  `json:"FileBlockingProfile"`
	DataFilteringProfile *string  `json:"DataFilteringProfile"`
	LogProfile           *string  `json:"LogProfile"`
}

// ConvertedPolicy holds every firewall object derived from a NetworkPolicy.
// DAG[0] is the source group and DAG[1] the destination group.
type ConvertedPolicy struct {
	Rule     SecurityRule    `json:"Rule"`
	DAG      [2]DAG          `json:"DAG"`
	Services []ServiceObject `json:"Services"`
}

// Result is the document handed back to the host.
type Result struct {
	ConvertedPolicy *ConvertedPolicy `json:"ConvertedPolicy"`
}
