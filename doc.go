// Package ukase resolves the templates and static resources used to render
// PDF documents.
//
// # Quick Start
//
// Create a loader over a packaged archive and resolve a template:
//
//	loader, err := ukase.NewResourceLoader(
//	    ukase.WithArchive("/srv/ukase/templates.jar"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer loader.Close()
//
//	src, err := loader.Resolve("invoice")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := src.Content()
//
// # Resolution Order
//
// A name is matched in this order:
//
//  1. "default - image as page" resolves to the embedded template.
//  2. Names starting with "upload://" resolve from runtime uploads only.
//  3. Other names get the template prefix and suffix ("/templates" and ".hbs"
//     by default) and are read from the override directory, if configured.
//  4. A name missing from the directory is read from the archive.
//
// Only "not found" falls through to the next step. An unreadable override
// file returns ErrIO, and a loader with neither directory nor archive returns
// ErrConfiguration for every generic name.
//
// # Uploads
//
// Upload registers template content at runtime:
//
//	loader.Upload("letter", "Dear {{name}}")
//	src, _ := loader.Resolve("upload://letter")
//
// Uploads are kept in memory until the process exits. The store is unbounded
// unless WithUploadLimit or WithUploadTTL is set.
//
// # Static Resources
//
// ResourceBytes reads fonts, images and other files by their raw archive
// path, with no template prefix or suffix. HasResource answers the same
// question for uploads and archive entries but, unlike Resolve and
// ResourceBytes, ignores the override directory.
//
// # Archive Formats
//
// Archives may be zip (including jar), tar or gzip-compressed tar. The format
// is detected from the file content.
package ukase
