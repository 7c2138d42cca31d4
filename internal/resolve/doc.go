// Package resolve turns the directory of an installing package into the
// place its git hooks belong.
//
// Packages are normally installed at <project>/node_modules/<name>. The
// project root is what the generated hooks must cd into, relative to the
// working tree root that git runs hooks from:
//
//	/repo/.git                     -> hooks in /repo/.git/hooks
//	/repo/web/node_modules/pkg     -> project root /repo/web, prefix "web"
//
// Submodules are supported through their ".git" indirection file. Packages
// that are dependencies of dependencies (node_modules nested inside
// node_modules) never install hooks.
//
// # Silent signals
//
// [ErrNotRepository], [ErrNestedDependency] and [ErrOutsideWorkTree] mean
// "nothing to do" rather than failure. Use [IsSkip] to tell them apart from
// real errors.
package resolve
