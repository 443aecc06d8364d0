package utils

// CalculateTotalPages menghitung jumlah halaman dari total rows
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
