package model

// Image is the backend's nested media shape. Data is null when no image
// was supplied, and all consumers must tolerate that.
type Image struct {
	Data *ImageData `json:"data"`
}

// ImageData is the entity wrapper around uploaded media attributes.
type ImageData struct {
	ID         int             `json:"id"`
	Attributes ImageAttributes `json:"attributes"`
}

// ImageAttributes describes an uploaded file and its derived formats.
type ImageAttributes struct {
	Name            string        `json:"name"`
	AlternativeText *string       `json:"alternativeText"`
	Caption         *string       `json:"caption"`
	Width           int           `json:"width"`
	Height          int           `json:"height"`
	Formats         *ImageFormats `json:"formats"`
	URL             string        `json:"url"`
}

// ImageFormats holds the resized renditions the backend generates.
// Any of them may be absent for small uploads.
type ImageFormats struct {
	Thumbnail *ImageFormat `json:"thumbnail"`
	Small     *ImageFormat `json:"small"`
	Medium    *ImageFormat `json:"medium"`
	Large     *ImageFormat `json:"large"`
}

// ImageFormat is a single rendition of an uploaded file.
type ImageFormat struct {
	URL    string  `json:"url"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Size   float64 `json:"size"`
}

// DisplayURL picks the best displayable URL, falling back through the
// large format, the medium format, then the base url. It returns "" when
// the image is null or carries no URL; callers substitute their own local
// default at that point.
func (i *Image) DisplayURL() string {
	if i == nil || i.Data == nil {
		return ""
	}
	attrs := i.Data.Attributes
	if f := attrs.Formats; f != nil {
		if f.Large != nil && f.Large.URL != "" {
			return f.Large.URL
		}
		if f.Medium != nil && f.Medium.URL != "" {
			return f.Medium.URL
		}
	}
	return attrs.URL
}

// Alt returns the alternative text for the image, or "" when absent.
func (i *Image) Alt() string {
	if i == nil || i.Data == nil || i.Data.Attributes.AlternativeText == nil {
		return ""
	}
	return *i.Data.Attributes.AlternativeText
}
