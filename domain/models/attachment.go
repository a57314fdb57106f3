package models

import "regexp"

var attachmentIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// ValidAttachmentID attachment id ใช้เป็น object path ตรงๆ
// จึงรับเฉพาะตัวอักษรที่ไม่สร้าง path ซ้อน และไม่รับ "." หรือ ".."
func ValidAttachmentID(id string) bool {
	if id == "." || id == ".." {
		return false
	}
	return attachmentIDPattern.MatchString(id)
}
