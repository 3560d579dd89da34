/*
Package codec reads and writes the YAML tree-definition format consumed by
the canopy CLI and HTTP adapter.

A definition is a nested document of leaf and branch nodes:

	kind: branch
	meta:
	  name: datacenter
	children:
	  - kind: leaf
	    payload: cpu
	  - kind: branch
	    children:
	      - kind: leaf
	        payload: ssd
	      - kind: leaf

Definitions describe how to construct a tree; they are not a persistence
layer for live trees. Meta entries are free-form and ignored by rendering.
*/
package codec
