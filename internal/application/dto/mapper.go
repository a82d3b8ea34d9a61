package dto

import (
	"btc-price-client/internal/domain/entities"
)

// RecordMapper maneja la conversión entre entidades del dominio y DTOs
type RecordMapper struct{}

// NewRecordMapper crea una nueva instancia del mapper
func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

// ToPriceResponse devuelve el registro tal cual; su JSON ya es plano
func (m *RecordMapper) ToPriceResponse(record entities.PriceRecord) PriceResponse {
	if record.Prices == nil {
		record.Prices = map[string]float64{}
	}
	return record
}

// ToMarketResponse convierte un MarketRecord a su DTO de respuesta
func (m *RecordMapper) ToMarketResponse(record entities.MarketRecord) *MarketResponse {
	return &MarketResponse{
		MarketCap:                record.MarketCap,
		TotalVolume:              record.TotalVolume,
		PriceChange24h:           record.PriceChange24h,
		PriceChangePercentage24h: record.PriceChangePercentage24h,
	}
}
