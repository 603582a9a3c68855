// Package scene defines the read-only node tree the generator walks.
//
// A scene is a rooted tree of named nodes. Each node carries zero or more
// typed capabilities (button, text, image and friends) plus an implicit
// container capability, and optionally one binding marker that steers how
// the node is exposed on the generated view class.
//
// The tree is owned by the host; nothing in this module mutates it except
// the attach step, which may add a capability to a root node.
package scene
