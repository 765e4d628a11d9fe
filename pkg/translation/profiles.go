package translation

import (
	"github.com/xsoar-content/k8s-automation/util"
)

// labelValue returns the value of metadata.labels[key], or nil if the policy has no such label.
func labelValue(policy map[string]interface{}, key string) *string {
	labels := nestedMap(policy, util.MetadataField, util.LabelsField)
	value, ok := labels[key].(string)
	if !ok {
		return nil
	}
	return &value
}

// GetAppID returns the App-ID the rule allows, e.g. "dns".
func GetAppID(policy map[string]interface{}) *string {
	return labelValue(policy, util.AppIDLabel)
}

// GetVulnerabilityProfile returns the vulnerability protection profile, e.g. "strict".
func GetVulnerabilityProfile(policy map[string]interface{}) *string {
	return labelValue(policy, util.VulnerabilityProfileLabel)
}

// GetAntiSpywareProfile returns the anti-spyware profile, e.g. "strict".
func GetAntiSpywareProfile(policy map[string]interface{}) *string {
	return labelValue(policy, util.AntiSpywareProfileLabel)
}

// GetAntivirusProfile returns the antivirus profile, e.g. "default".
func GetAntivirusProfile(policy map[string]interface{}) *string {
	return labelValue(policy, util.AntivirusProfileLabel)
}

// GetURLFilteringProfile returns the URL filtering profile.
func GetURLFilteringProfile(policy map[string]interface{}) *string {
	return labelValue(policy, util.URLFilteringProfileLabel)
}

// GetFileBlockingProfile returns the file blocking profile.
func GetFileBlockingProfile(policy map[string]interface{}) *string {
	return labelValue(policy, util.FileBlockingProfileLabel)
}

// GetDataFilteringProfile returns the data filtering profile.
func GetDataFilteringProfile(policy map[string]interface{}) *string {
	return labelValue(policy, util.DataFilteringProfileLabel)
}

// GetLogProfile returns the log forwarding profile, e.g. "Panorama".
func GetLogProfile(policy map[string]interface{}) *string {
	return labelValue(policy, util.LogProfileLabel)
}
