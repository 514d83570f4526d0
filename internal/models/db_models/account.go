package db_models

type Account struct {
	BaseModel
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:user"` // "user" | "admin"

	Restaurants []Restaurant `gorm:"foreignKey:Owner"`
}
