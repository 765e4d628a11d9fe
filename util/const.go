package util

// NetworkPolicy field names.
const (
	MetadataField          string = "metadata"
	NamespaceField         string = "namespace"
	NameField              string = "name"
	LabelsField            string = "labels"
	SpecField              string = "spec"
	IngressField           string = "ingress"
	FromField              string = "from"
	FromFallbackField      string = "_from"
	PortsField             string = "ports"
	PortField              string = "port"
	ProtocolField          string = "protocol"
	PodSelectorField       string = "podSelector"
	NamespaceSelectorField string = "namespaceSelector"
	MatchLabelsField       string = "matchLabels"
	IPBlockField           string = "ipBlock"
	CIDRField              string = "cidr"
	KindField              string = "kind"
	ItemsField             string = "items"
	RawObjectField         string = "raw_object"
)

// Firewall object related constants.
const (
	DefaultProtocol  string = "tcp"
	AnyZone          string = "any"
	AnyPort          string = "any"
	TagSeparator     string = "."
	MatchOrSeparator string = " OR "
	AddressSeparator string = ", "
)

// Label keys on a NetworkPolicy carrying firewall profile settings.
const (
	AppIDLabel                string = "np.panw.com/appid"
	VulnerabilityProfileLabel string = "np.panw.com/vuln-protection"
	AntiSpywareProfileLabel   string = "np.panw.com/anti-spyware"
	AntivirusProfileLabel     string = "np.panw.com/antivirus"
	URLFilteringProfileLabel  string = "np.panw.com/url-filtering"
	FileBlockingProfileLabel  string = "np.panw.com/file-blocking"
	DataFilteringProfileLabel string = "np.panw.com/data-filtering"
	LogProfileLabel           string = "np.panw.com/log-profile"
)

// Script names and argument keys as registered with the host.
const (
	K8sToPanosScript           string = "K8sToPanos"
	StripAccentMarksScript     string = "StripAccentMarksFromString"
	KubernetesNetworkPolicyArg string = "KubernetesNetworkPolicy"
	ClusterNameArg             string = "ClusterName"
	ValueArg                   string = "value"
)
