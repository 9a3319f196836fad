package service

import "github.com/google/uuid"

//go:generate mockery --name Generator

// Generator генерирует идентификаторы закладок
type Generator interface {
	GenerateID() string
}

// UUIDGenerator генерирует идентификаторы в формате UUID v4
type UUIDGenerator struct{}

// NewUUIDGenerator создает новый генератор идентификаторов
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// GenerateID генерирует случайный UUID v4
func (g *UUIDGenerator) GenerateID() string {
	return uuid.New().String()
}
