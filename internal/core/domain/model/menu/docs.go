// Package menu models the catalog: MenuItem entities identified for upsert
// purposes by their (name, category) pair, and the fixed Category enum.
package menu
