package main

import (
	"log"
	"net/http"

	"github.com/chalkline/chalkline/internal/auth"
	"github.com/chalkline/chalkline/internal/config"
	"github.com/chalkline/chalkline/internal/db"
	"github.com/chalkline/chalkline/internal/handler"
	"github.com/chalkline/chalkline/internal/llm"
	"github.com/chalkline/chalkline/internal/store"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime, !cfg.InsecureCookies)

			teacherStore := store.NewTeacherStore(database)
			subjectStore := store.NewSubjectStore(database)
			absenceStore := store.NewAbsenceStore(database, teacherStore)
			timetableStore := store.NewTimetableStore(database)

			generator, err := llm.New(cfg)
			if err != nil {
				return err
			}
			if generator == nil {
				log.Println("no LLM provider configured; timetable generation is disabled")
			}

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				TeacherStore:   teacherStore,
				SubjectStore:   subjectStore,
				AbsenceStore:   absenceStore,
				TimetableStore: timetableStore,
				Generator:      generator,
				APIToken:       cfg.API.Token,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
