// Package automation is the boundary between the automation scripts and the host that runs them.
// The host hands a script its arguments as Args and receives an Entry back; nothing else is shared.
package automation
