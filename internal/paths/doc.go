// Package paths resolves the directories agentlint reads from: the agents
// directory inside a repository and the per-user configuration directory.
//
// The per-user directory follows the XDG Base Directory Specification via
// github.com/adrg/xdg:
//
//	paths.ConfigDir() // ~/.config/agentlint on Linux
package paths
