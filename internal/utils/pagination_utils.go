package utils

import "gorm.io/gorm"

// Paginate builds a gorm scope for offset pagination. Page and size are
// assumed already clamped by the caller.
func Paginate(page, size int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * size
		return db.Offset(offset).Limit(size)
	}
}

// TotalPages is the page count for a given total and page size,
// rounded up.
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
