// Package kernel holds the value objects shared by the menu and order models:
// UUID identifiers and Price amounts. Both are immutable, their zero values are
// invalid, and they are built only through the constructors in this package.
package kernel
