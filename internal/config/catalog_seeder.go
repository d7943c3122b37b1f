package config

import (
	"context"
	"log"
	"time"

	"torrealta-portal/internal/adapters/persistence/repositories"
	"torrealta-portal/internal/core/domain"
)

var (
	imgApartamento   = "https://images.unsplash.com/photo-1594873604892-b599f847e859?w=1080"
	imgSala          = "https://images.unsplash.com/photo-1638885930125-85350348d266?w=1080"
	imgCocina        = "https://images.unsplash.com/photo-1658280911730-467b4764c09c?w=1080"
	imgEstudio       = "https://images.unsplash.com/photo-1702014862053-946a122b920d?w=1080"
	imgHabitacion    = "https://images.unsplash.com/photo-1704428382583-c9c7c1e55d94?w=1080"
	imgPenthouse     = "https://images.unsplash.com/photo-1568115286680-d203e08a8be6?w=1080"
	imgFiestaTerraza = "https://images.unsplash.com/photo-1758272134263-a658a0d94c2d?w=1080"
	imgYoga          = "https://images.unsplash.com/photo-1758274525134-4b1e9cc67dbb?w=1080"
	imgCine          = "https://images.unsplash.com/photo-1527979809431-ea3d5c0c01c9?w=1080"
)

// SeedCatalog loads the building's 21 units and the event board
func SeedCatalog(ctx context.Context, unitRepo repositories.UnitRepository, eventRepo repositories.EventRepository) error {
	if err := seedUnits(ctx, unitRepo); err != nil {
		return err
	}
	if err := seedEvents(ctx, eventRepo); err != nil {
		return err
	}

	log.Println("✅ Catalog data seeded successfully")
	return nil
}

func seedUnits(ctx context.Context, unitRepo repositories.UnitRepository) error {
	units := []domain.Unit{
		// Piso 1
		{
			ID: "101", Piso: 1, Tipo: domain.UnidadApartamento, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgApartamento, imgSala, imgCocina}, PrecioOferta: 1200000,
			Descripcion: "Moderno apartamento con excelente iluminación natural",
			Area:        65, Habitaciones: 2, Banos: 2,
		},
		{
			ID: "102", Piso: 1, Tipo: domain.UnidadApartaestudio, Estado: domain.UnidadOcupado,
			MediaURLs: []string{imgEstudio, imgHabitacion}, PrecioOferta: 850000,
			Descripcion: "Apartaestudio funcional y acogedor",
			Area:        35, Habitaciones: 1, Banos: 1,
		},
		{
			ID: "103", Piso: 1, Tipo: domain.UnidadApartamento, Estado: domain.UnidadMantenimiento,
			MediaURLs: []string{imgApartamento}, PrecioOferta: 1350000,
			Descripcion: "Espacioso apartamento en proceso de renovación",
			Area:        75, Habitaciones: 3, Banos: 2,
		},
		// Piso 2
		{
			ID: "201", Piso: 2, Tipo: domain.UnidadApartamento, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgSala, imgHabitacion, imgCocina}, PrecioOferta: 1280000,
			Descripcion: "Apartamento con hermosa vista",
			Area:        68, Habitaciones: 2, Banos: 2,
		},
		{
			ID: "202", Piso: 2, Tipo: domain.UnidadApartaestudio, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgEstudio}, PrecioOferta: 900000,
			Descripcion: "Apartaestudio moderno con cocina integrada",
			Area:        38, Habitaciones: 1, Banos: 1,
		},
		{
			ID: "203", Piso: 2, Tipo: domain.UnidadApartamento, Estado: domain.UnidadOcupado,
			MediaURLs: []string{imgApartamento, imgSala}, PrecioOferta: 1400000,
			Descripcion: "Apartamento de lujo con acabados premium",
			Area:        80, Habitaciones: 3, Banos: 2,
		},
		{
			ID: "204", Piso: 2, Tipo: domain.UnidadApartaestudio, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgEstudio}, PrecioOferta: 880000,
			Descripcion: "Ideal para estudiantes o profesionales",
			Area:        36, Habitaciones: 1, Banos: 1,
		},
		// Piso 3
		{
			ID: "301", Piso: 3, Tipo: domain.UnidadApartamento, Estado: domain.UnidadOcupado,
			MediaURLs: []string{imgApartamento}, PrecioOferta: 1320000,
			Descripcion: "Apartamento familiar amplio",
			Area:        72, Habitaciones: 3, Banos: 2,
		},
		{
			ID: "302", Piso: 3, Tipo: domain.UnidadApartamento, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgSala, imgHabitacion}, PrecioOferta: 1250000,
			Descripcion: "Excelente distribución de espacios",
			Area:        66, Habitaciones: 2, Banos: 2,
		},
		{
			ID: "303", Piso: 3, Tipo: domain.UnidadApartaestudio, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgEstudio}, PrecioOferta: 920000,
			Descripcion: "Apartaestudio con balcón privado",
			Area:        40, Habitaciones: 1, Banos: 1,
		},
		// Piso 4
		{
			ID: "401", Piso: 4, Tipo: domain.UnidadApartamento, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgApartamento, imgSala}, PrecioOferta: 1380000,
			Descripcion: "Apartamento luminoso con vista panorámica",
			Area:        76, Habitaciones: 3, Banos: 2,
		},
		{
			ID: "402", Piso: 4, Tipo: domain.UnidadApartamento, Estado: domain.UnidadOcupado,
			MediaURLs: []string{imgApartamento}, PrecioOferta: 1290000,
			Descripcion: "Moderno y elegante",
			Area:        70, Habitaciones: 2, Banos: 2,
		},
		{
			ID: "403", Piso: 4, Tipo: domain.UnidadApartaestudio, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgEstudio}, PrecioOferta: 950000,
			Descripcion: "Completamente amoblado",
			Area:        42, Habitaciones: 1, Banos: 1,
		},
		{
			ID: "404", Piso: 4, Tipo: domain.UnidadApartamento, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgApartamento, imgSala}, PrecioOferta: 1420000,
			Descripcion: "Espacioso con walk-in closet",
			Area:        78, Habitaciones: 3, Banos: 2,
		},
		// Piso 5
		{
			ID: "501", Piso: 5, Tipo: domain.UnidadApartamento, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgPenthouse, imgSala, imgHabitacion}, PrecioOferta: 1450000,
			Descripcion: "Penthouse con terraza privada",
			Area:        85, Habitaciones: 3, Banos: 3,
		},
		{
			ID: "502", Piso: 5, Tipo: domain.UnidadApartamento, Estado: domain.UnidadOcupado,
			MediaURLs: []string{imgApartamento}, PrecioOferta: 1340000,
			Descripcion: "Vista espectacular a la ciudad",
			Area:        74, Habitaciones: 2, Banos: 2,
		},
		{
			ID: "503", Piso: 5, Tipo: domain.UnidadApartamento, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgApartamento, imgSala}, PrecioOferta: 1380000,
			Descripcion: "Diseño contemporáneo",
			Area:        76, Habitaciones: 3, Banos: 2,
		},
		{
			ID: "504", Piso: 5, Tipo: domain.UnidadApartaestudio, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgEstudio}, PrecioOferta: 980000,
			Descripcion: "Loft moderno con techos altos",
			Area:        45, Habitaciones: 1, Banos: 1,
		},
		// Piso 6
		{
			ID: "601", Piso: 6, Tipo: domain.UnidadApartamento, Estado: domain.UnidadDisponible,
			MediaURLs: []string{imgPenthouse, imgSala, imgHabitacion}, PrecioOferta: 1550000,
			Descripcion: "Penthouse de lujo con rooftop",
			Area:        95, Habitaciones: 3, Banos: 3,
		},
		{
			ID: "602", Piso: 6, Tipo: domain.UnidadApartamento, Estado: domain.UnidadMantenimiento,
			MediaURLs: []string{imgApartamento}, PrecioOferta: 1480000,
			Descripcion: "En proceso de actualización",
			Area:        88, Habitaciones: 3, Banos: 2,
		},
		{
			ID: "603", Piso: 6, Tipo: domain.UnidadApartamento, Estado: domain.UnidadOcupado,
			MediaURLs: []string{imgPenthouse}, PrecioOferta: 1520000,
			Descripcion: "Máximo nivel con jacuzzi privado",
			Area:        92, Habitaciones: 3, Banos: 3,
		},
	}

	for i := range units {
		if err := unitRepo.Create(ctx, &units[i]); err != nil {
			return err
		}
	}

	log.Printf("   Seeded %d units", len(units))
	return nil
}

func seedEvents(ctx context.Context, eventRepo repositories.EventRepository) error {
	events := []domain.Event{
		{
			ID:          "evt001",
			Titulo:      "Encuentro de Bienvenida 2025",
			Fecha:       time.Date(2025, time.February, 15, 18, 0, 0, 0, time.Local),
			Descripcion: "Únete a nosotros para dar la bienvenida a los nuevos residentes. Habrá música en vivo, comida y bebidas. ¡No te lo pierdas!",
			ImagenURL:   imgFiestaTerraza,
			Destacado:   true,
		},
		{
			ID:          "evt002",
			Titulo:      "Yoga en la Terraza",
			Fecha:       time.Date(2025, time.February, 22, 7, 0, 0, 0, time.Local),
			Descripcion: "Sesión de yoga matutina en nuestra terraza con vista panorámica. Todos los niveles son bienvenidos.",
			ImagenURL:   imgYoga,
			Destacado:   true,
		},
		{
			ID:          "evt003",
			Titulo:      "Noche de Cine Comunitaria",
			Fecha:       time.Date(2025, time.March, 5, 19, 30, 0, 0, time.Local),
			Descripcion: "Proyección de película en el salón comunal. Palomitas incluidas. Votación abierta para elegir la película.",
			ImagenURL:   imgCine,
			Destacado:   true,
		},
		{
			ID:          "evt004",
			Titulo:      "Workshop de Cocina Internacional",
			Fecha:       time.Date(2025, time.March, 12, 16, 0, 0, 0, time.Local),
			Descripcion: "Aprende a preparar platos internacionales con nuestro chef invitado. Cupos limitados.",
			ImagenURL:   imgCocina,
			Destacado:   false,
		},
	}

	for i := range events {
		if err := eventRepo.Create(ctx, &events[i]); err != nil {
			return err
		}
	}

	log.Printf("   Seeded %d events", len(events))
	return nil
}
