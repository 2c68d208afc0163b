package models

// File is the metadata row of an uploaded blob. Path is the blob storage key.
type File struct {
	ID   int
	Name string
	Path string
}

// FileDto carries a file's name and content between the web layer and the
// file service.
type FileDto struct {
	Name    string
	Content []byte
}
