// Package treeyaml reads and writes trees in YAML.
//
// A document is either a sequence of statements or a mapping with the single
// key "module" holding that sequence:
//
//	module:
//	  - def: f
//	    params: [x]
//	    body:
//	      - str: docstring
//	      - call: g
//	        args: [{name: x}, {const: 5}]
//	  - if: {const: true}
//	    then: [{assign: a, value: {const: 1}}]
//	    else: [{assign: a, value: {const: 2}}]
//	  - return: [{name: a}]
//
// Statement keys are def, if, assign, return, global, nonlocal and expr. An
// expression mapping (call, name, const, str, seq) in statement position is an
// expression statement. Any node may set its line explicitly with the line
// key, otherwise the line of the YAML node is used.
package treeyaml
