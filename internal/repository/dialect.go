package repository

import "gorm.io/gorm"

// monthKey возвращает SQL-выражение YYYY-MM для столбца с датой
func monthKey(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "sqlite" {
		return "substr(" + column + ", 1, 7)"
	}
	return "to_char(" + column + ", 'YYYY-MM')"
}

// dateText возвращает SQL-выражение YYYY-MM-DD для столбца с датой
func dateText(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "sqlite" {
		return "substr(" + column + ", 1, 10)"
	}
	return "to_char(" + column + ", 'YYYY-MM-DD')"
}
