// Package taskfile loads and saves the task document.
//
// The document (tasks.json by default) is a single JSON array:
//
//	[
//	  {
//	    "id": 1,
//	    "description": "buy milk",
//	    "status": "TODO",
//	    "createdAt": "2024-01-01T09:00:00.000000000Z",
//	    "updatedAt": null
//	  }
//	]
//
// # Status Values
//
//   - "TODO"
//   - "IN_PROGRESS"
//   - "DONE"
//
// # Timestamps
//
// Timestamps are written with TimeLayout (RFC 3339 with fixed nanosecond
// precision). Reads accept any RFC 3339 precision, plus zone-less ISO local
// date-times as written by earlier versions of the tool.
//
// # File Format
//
// When writing the document, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - A temp file renamed over the target, so readers never see a partial write
package taskfile
