package main

import (
	"context"

	"BACK_FORMULARIO_GO/config"
	"BACK_FORMULARIO_GO/database"
	"BACK_FORMULARIO_GO/events"
	"BACK_FORMULARIO_GO/logger"
	"BACK_FORMULARIO_GO/repository"
	"BACK_FORMULARIO_GO/routes"
	"BACK_FORMULARIO_GO/server"
	"BACK_FORMULARIO_GO/services"
	"BACK_FORMULARIO_GO/validation"
)

func main() {
	// Cargar configuración
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Logrus("fatal", err)
	}
	logger.Init(cfg.LogLevel, cfg.Production())

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Logrus("fatal", "Error al conectar a la base de datos: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		logger.Logrus("fatal", "Error al ejecutar migraciones: %v", err)
	}
	logger.Logrus("info", "Migraciones ejecutadas con éxito")

	publisher := newPublisher(cfg)
	defer publisher.Close()

	svc := services.NewUsuarioService(repository.NewUsuarioRepository(db), publisher, 0)

	handler := routes.SetupRoutes(routes.Deps{
		Service:   svc,
		Validator: validation.New(),
		Origins:   cfg.Origins(),
		Debug:     !cfg.Production(),
	})

	logger.Logrus("info", "Servidor corriendo en el puerto :%s (%s)", cfg.Port, cfg.GoEnv)
	if err := server.Graceful(server.GracefulConfig{Handler: handler, Port: cfg.Port}); err != nil {
		logger.Logrus("error", "Servidor detenido con error: %v", err)
	}
}

func newPublisher(cfg *config.Config) events.Publisher {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		logger.Logrus("info", "KAFKA_BROKERS vacío, eventos desactivados")
		return events.NoopPublisher{}
	}

	publisher, err := events.NewKafkaPublisher(brokers, cfg.KafkaTopic, cfg.GorutinePoolSize)
	if err != nil {
		logger.Logrus("warn", "No se pudo iniciar el publicador de eventos: %v", err)
		return events.NoopPublisher{}
	}
	return publisher
}
