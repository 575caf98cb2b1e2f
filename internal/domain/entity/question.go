package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	// Обработка пустого массива байтов
	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if o == nil || len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// Question представляет вопрос теста
type Question struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	TestID        uint        `gorm:"not null;index" json:"test_id"`
	QuestionText  string      `gorm:"size:1000;not null" json:"question_text"`
	Options       StringArray `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string      `gorm:"size:500;not null" json:"-"` // Скрыто от клиента
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrectAnswer проверяет выбранный ответ на точное совпадение с правильным.
// Сравнение строгое: с учетом регистра, без обрезания пробелов.
func (q *Question) IsCorrectAnswer(selected string) bool {
	return q.CorrectAnswer == selected
}

// HasOption проверяет, что переданная строка есть среди вариантов ответа
func (q *Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}
