package regobs

import (
	"encoding/json"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Image is a local image file to upload alongside a registration.
// Upload assigns the attachment id the submission refers to.
type Image struct {
	FilePath        string
	Mime            string
	Direction       *Direction
	Photographer    string
	CopyrightHolder string
	Comment         string

	// uploadID is set by Connection.uploadImage before submission.
	uploadID string
}

// NewImage builds an Image from a file path. The file name must carry
// an image mime type.
func NewImage(filePath string) (*Image, error) {
	mimeType := mime.TypeByExtension(filepath.Ext(filePath))
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotAnImage, filePath)
	}
	return &Image{FilePath: filePath, Mime: mimeType}, nil
}

type imageWire struct {
	UploadID     *string  `json:"AttachmentUploadId,omitempty"`
	Aspect       *float64 `json:"Aspect,omitempty"`
	Mime         *string  `json:"AttachmentMimeType,omitempty"`
	Photographer *string  `json:"Photographer,omitempty"`
	Copyright    *string  `json:"Copyright,omitempty"`
	Comment      *string  `json:"Comment,omitempty"`
}

func (i Image) wire() imageWire {
	var w imageWire
	if i.uploadID != "" {
		id := i.uploadID
		w.UploadID = &id
	}
	if i.Direction != nil {
		deg := float64(i.Direction.Degrees())
		w.Aspect = &deg
	}
	if i.Mime != "" {
		m := i.Mime
		w.Mime = &m
	}
	if i.Photographer != "" {
		w.Photographer = &i.Photographer
	}
	if i.CopyrightHolder != "" {
		w.Copyright = &i.CopyrightHolder
	}
	if i.Comment != "" {
		w.Comment = &i.Comment
	}
	return w
}

func (i Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.wire())
}

// UploadedImage is an attachment as returned by the service.
type UploadedImage struct {
	ID              *int
	Url             string
	Mime            string
	Direction       *Direction
	Photographer    string
	CopyrightHolder string
	Comment         string
}

type uploadedImageWire struct {
	Mime         *string  `json:"AttachmentMimeType,omitempty"`
	Aspect       *float64 `json:"Aspect,omitempty"`
	Photographer *string  `json:"Photographer,omitempty"`
	Copyright    *string  `json:"Copyright,omitempty"`
	Comment      *string  `json:"Comment,omitempty"`
	ID           *int     `json:"AttachmentId,omitempty"`
	Url          *string  `json:"Url,omitempty"`
}

func (u *UploadedImage) UnmarshalJSON(data []byte) error {
	var w uploadedImageWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*u = UploadedImage{ID: w.ID}
	if w.Mime != nil {
		u.Mime = *w.Mime
	}
	if w.Aspect != nil {
		dir := DirectionFromDegrees(*w.Aspect)
		u.Direction = &dir
	}
	if w.Photographer != nil {
		u.Photographer = *w.Photographer
	}
	if w.Copyright != nil {
		u.CopyrightHolder = *w.Copyright
	}
	if w.Comment != nil {
		u.Comment = *w.Comment
	}
	if w.Url != nil {
		u.Url = *w.Url
	}
	return nil
}
