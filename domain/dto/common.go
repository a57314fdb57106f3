package dto

// AttachmentIDParam path param ของ attachment
type AttachmentIDParam struct {
	AttachmentID string `validate:"required,attachmentid"`
}

// TodoIDParam path param ของ todo
type TodoIDParam struct {
	TodoID string `validate:"required,max=64"`
}
