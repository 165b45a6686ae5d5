// Package loader reads custom-generator definitions from YAML.
//
// A document names the generator class, its loop levels, an optional tick
// specifier and seed, and an ordered list of fields:
//
//	name: PersonGenerator
//	seed: 42
//	ticks: [2, 3]            # or a single integer
//	loops:
//	  - level: 1
//	    vars:
//	      - name: country
//	        values: [DE, FR]
//	fields:
//	  - name: id
//	    kind: integer
//	    params: {low: 1, high: 1000}
//	  - name: first_name
//	    kind: fake
//	    params: {kind: first_name}
//	  - name: country
//	    loop: country          # emit a loop variable
//	  - name: id_copy
//	    ref: id                # same source as "id", correlated values
//	  - name: greeting
//	    kind: format
//	    params: {format: "%s from %s"}
//	    args: [first_name, country]
//
// Field kinds map onto the primitives package (constant, integer, float,
// boolean, choice, hashdigest, timestamp, fake) plus "format", a derived
// generator over earlier fields and loop variables.
package loader
