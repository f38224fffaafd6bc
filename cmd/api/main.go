package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raw-labour-hire/timesheet-backend-go/internal/config"
	appHTTP "github.com/raw-labour-hire/timesheet-backend-go/internal/handler/http"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/cron"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/database"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/email"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/geocode"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/jwt"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/oauth"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/pkg/sms"
	"github.com/raw-labour-hire/timesheet-backend-go/internal/repository/postgresql"
	authService "github.com/raw-labour-hire/timesheet-backend-go/internal/service/auth"
	clientService "github.com/raw-labour-hire/timesheet-backend-go/internal/service/client"
	clockService "github.com/raw-labour-hire/timesheet-backend-go/internal/service/clock"
	exportService "github.com/raw-labour-hire/timesheet-backend-go/internal/service/export"
	jobsiteService "github.com/raw-labour-hire/timesheet-backend-go/internal/service/jobsite"
	myobService "github.com/raw-labour-hire/timesheet-backend-go/internal/service/myob"
	notificationService "github.com/raw-labour-hire/timesheet-backend-go/internal/service/notification"
	timesheetService "github.com/raw-labour-hire/timesheet-backend-go/internal/service/timesheetsvc"
	workerService "github.com/raw-labour-hire/timesheet-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	workerRepo := postgresql.NewWorkerRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	jobSiteRepo := postgresql.NewJobSiteRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	docketRepo := postgresql.NewDocketRepository(db)
	exportRepo := postgresql.NewExportRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	myobRepo := postgresql.NewMYOBRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	geocoder := geocode.NewNominatim(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent)
	smsSender := sms.NewTwilioSender(sms.Config{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		FromNumber: cfg.Twilio.FromNumber,
	})
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	myobOAuth := oauth.NewMYOBService(cfg.MYOB.ClientID, cfg.MYOB.ClientSecret, cfg.MYOB.RedirectURL)

	scheduler := cron.NewScheduler(location)
	reminders := cron.NewReminders(workerRepo, entryRepo, notificationRepo, smsSender, location)
	if err := reminders.Register(context.Background(), scheduler); err != nil {
		log.Fatal("Failed to register reminder jobs:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	notifier := notificationService.NewNotifier(notificationRepo, smsSender, emailService, cfg.SMTP.ApprovalsInbox)

	authSvc := authService.NewAuthService(workerRepo, JWTService)
	clockSvc := clockService.NewClockService(db, timesheetRepo, entryRepo, docketRepo, jobSiteRepo, geocoder, location)
	timesheetSvc := timesheetService.NewTimesheetService(db, timesheetRepo, entryRepo, workerRepo, notifier, location)
	exportSvc := exportService.NewExportService(exportRepo)
	workerSvc := workerService.NewWorkerService(workerRepo)
	clientSvc := clientService.NewClientService(clientRepo)
	jobSiteSvc := jobsiteService.NewJobSiteService(jobSiteRepo)
	settingsSvc := notificationService.NewSettingsService(notificationRepo, scheduler)
	myobSvc := myobService.NewMYOBService(myobRepo, myobOAuth)

	router := appHTTP.NewRouter(JWTService, cfg.App.Env, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Clock:        appHTTP.NewClockHandler(clockSvc),
		Timesheet:    appHTTP.NewTimesheetHandler(timesheetSvc),
		Export:       appHTTP.NewExportHandler(exportSvc),
		Worker:       appHTTP.NewWorkerHandler(workerSvc),
		Client:       appHTTP.NewClientHandler(clientSvc),
		JobSite:      appHTTP.NewJobSiteHandler(jobSiteSvc),
		Notification: appHTTP.NewNotificationHandler(settingsSvc),
		MYOB:         appHTTP.NewMYOBHandler(myobSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
