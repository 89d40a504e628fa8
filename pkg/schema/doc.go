// Package schema describes the rows of the field schema table: one
// FieldDefinition per data column, keyed by a unique Key and typed by a
// closed Kind. Definitions are plain data; package controls turns them into
// widgets.
//
// Schemas are usually loaded from a YAML or JSON document:
//
//	fields:
//	  - key: Animal
//	    kind: FixedChoice
//	    label: Animal
//	    choices: [Deer, Fox, Other]
//	  - key: Seen
//	    kind: Flag
//	    default: "false"
//
// LoadFile, Parse and LoadFS normalise, sanitise and validate the rows before
// handing them back in control order.
package schema
