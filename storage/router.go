package storage

import "strings"

// Router picks the destination store for an uploaded file by its MIME
// class: image, video and audio go to the media store, everything else
// (pdf, zip, office documents, unknown types) goes to the document store.
type Router struct {
	Media BlobStore
	Docs  BlobStore
}

func (r *Router) StoreFor(contentType string) BlobStore {
	class := contentType
	if i := strings.Index(contentType, "/"); i >= 0 {
		class = contentType[:i]
	}
	switch strings.ToLower(class) {
	case "image", "video", "audio":
		return r.Media
	default:
		return r.Docs
	}
}
