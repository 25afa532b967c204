package events

import (
	"context"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/panjf2000/ants/v2"
	"github.com/segmentio/kafka-go"

	"BACK_FORMULARIO_GO/logger"
	"BACK_FORMULARIO_GO/models"
)

type Tipo string

const (
	UsuarioRegistrado  Tipo = "usuario.registrado"
	UsuarioCreado      Tipo = "usuario.creado"
	UsuarioActualizado Tipo = "usuario.actualizado"
	UsuarioEliminado   Tipo = "usuario.eliminado"
)

const writeTimeout = 10 * time.Second

// Evento describe un cambio sobre la tabla usuarios
type Evento struct {
	Tipo      Tipo            `json:"tipo"`
	UsuarioID int64           `json:"usuario_id"`
	Usuario   *models.Usuario `json:"usuario,omitempty"`
	Fecha     time.Time       `json:"fecha"`
}

func Nuevo(tipo Tipo, id int64, u *models.Usuario) Evento {
	return Evento{Tipo: tipo, UsuarioID: id, Usuario: u, Fecha: time.Now().UTC()}
}

// Publisher emite eventos sin bloquear la petición; los fallos solo se
// registran en el log.
type Publisher interface {
	Publish(ctx context.Context, evento Evento)
	Close() error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Evento) {}

func (NoopPublisher) Close() error { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher escribe en Kafka desde un pool de goroutines
type KafkaPublisher struct {
	writer messageWriter
	pool   *ants.PoolWithFunc
}

func NewKafkaPublisher(brokers []string, topic string, poolSize int) (*KafkaPublisher, error) {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		AllowAutoTopicCreation: true,
		MaxAttempts:            10,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Logrus("error", msg, args...)
		}),
	}

	return newKafkaPublisher(writer, poolSize)
}

func newKafkaPublisher(writer messageWriter, poolSize int) (*KafkaPublisher, error) {
	pool, err := ants.NewPoolWithFunc(poolSize, func(data interface{}) {
		msg := data.(kafka.Message)

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := writer.WriteMessages(ctx, msg); err != nil {
			logger.Logrus("error", "no se pudo publicar el evento %s: %v", msg.Key, err)
		}
	},
		ants.WithPreAlloc(true),
		ants.WithNonblocking(true),
	)
	if err != nil {
		return nil, err
	}

	return &KafkaPublisher{writer: writer, pool: pool}, nil
}

func (p *KafkaPublisher) Publish(_ context.Context, evento Evento) {
	body, err := json.Marshal(evento)
	if err != nil {
		logger.Logrus("error", "no se pudo serializar el evento: %v", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(evento.UsuarioID, 10)),
		Value: body,
		Headers: []kafka.Header{
			{Key: "tipo", Value: []byte(evento.Tipo)},
		},
	}

	if err := p.pool.Invoke(msg); err != nil {
		logger.Logrus("warn", "evento %s descartado: %v", evento.Tipo, err)
	}
}

// Close espera a los envíos en curso y cierra el writer
func (p *KafkaPublisher) Close() error {
	if err := p.pool.ReleaseTimeout(writeTimeout); err != nil {
		logger.Logrus("warn", "pool de eventos cerrado con tareas pendientes: %v", err)
	}
	return p.writer.Close()
}
