package domain

// KeyPrefix namespaces every key this service reads from the store.
const KeyPrefix = "drivesearch:"

// HydratedDocument is a document resolved to its stored full text.
// Instances live for the duration of one request.
type HydratedDocument struct {
	ID       string
	FileName string
	FilePath string
	Modified string
	Text     string
}

// CharLength returns the length of the full text in bytes.
func (d HydratedDocument) CharLength() int { return len(d.Text) }
