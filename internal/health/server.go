package health

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server отвечает на проверки живости от супервизора процесса и
// отдаёт метрики. Работает независимо от диалогового цикла и не
// делит с ним никакого изменяемого состояния.
type Server struct {
	log *zap.Logger
	mux *http.ServeMux
	srv *http.Server
}

func New(logger *zap.Logger) *Server {
	s := &Server{
		log: logger,
		mux: http.NewServeMux(),
	}

	s.mux.HandleFunc("/", s.rootHandler)
	s.mux.HandleFunc("/health", s.healthHandler)
	s.mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Mux отдаёт маршрутизатор — на него же вешается вебхук Telegram
func (s *Server) Mux() *http.ServeMux {
	return s.mux
}

// Start запускает HTTP-сервер в фоне
func (s *Server) Start(port string) {
	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: s.mux,
	}

	go func() {
		s.log.Info("Запускаем HTTP-сервер", zap.String("port", port))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("HTTP-сервер завершился с ошибкой", zap.Error(err))
		}
	}()
}

// Stop останавливает HTTP-сервер
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Bot is running"))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
