package domain

import (
	"fmt"
	"time"
)

// Department представляет подразделение, одну строку таблицы departments.
// Нулевой ID означает, что запись ещё не сохранена.
type Department struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// HasID сообщает, присвоен ли идентификатор хранилищем
func (d Department) HasID() bool {
	return d.ID != 0
}

func (d Department) String() string {
	return fmt.Sprintf("Department[id=%d, name=%s]", d.ID, d.Name)
}
