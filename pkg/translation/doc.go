// Package translation converts a Kubernetes NetworkPolicy object into the firewall objects
// needed to enforce it on a next generation firewall: one security rule, a source and a
// destination dynamic address group, and service objects for the allowed ports.
// The policy is read as an unstructured object. Fields that are absent at any level are
// treated as empty and never cause an error; only metadata.namespace and metadata.name are required.
package translation
