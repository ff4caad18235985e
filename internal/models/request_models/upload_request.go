package request_models

// ImageFile describes an image the client wants to upload. Data may be nil on
// the server side; validation only needs the declared type and size.
type ImageFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
