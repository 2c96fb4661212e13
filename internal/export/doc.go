// Package export reads relation records from a project export stream and
// writes built entities back out.
//
// The stream is a sequence of JSON objects, usually one per line:
//
//	{"relation": "issues", "attributes": {"id": 1, "title": "Bug", "author_id": 7}}
//	{"relation": "notes", "attributes": {"id": 2, "note": "", "author_id": 7, "author": {"name": "Jane"}}}
//
// Numbers are decoded as json.Number so large ids survive intact.
package export
