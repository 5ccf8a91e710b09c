package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hvacpro-backend/config"
	"hvacpro-backend/models"
	"hvacpro-backend/sheets"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// ReminderService texts the owner a digest of today's scheduled work days
// every morning. It is best-effort: any failure is logged and the next run
// tries again from scratch.
type ReminderService struct {
	cfg       config.Config
	workDays  *sheets.WorkDayRepo
	projects  *sheets.ProjectRepo
	customers *sheets.CustomerRepo
	client    *twilio.RestClient
	log       *zap.Logger
}

func NewReminderService(cfg config.Config, workDays *sheets.WorkDayRepo, projects *sheets.ProjectRepo, customers *sheets.CustomerRepo, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		cfg:       cfg,
		workDays:  workDays,
		projects:  projects,
		customers: customers,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		log: logger,
	}
}

// StartScheduler registers the daily digest job. Callers should only invoke
// this when cfg.RemindersEnabled() is true.
func (s *ReminderService) StartScheduler() error {
	c := cron.New()
	if _, err := c.AddFunc(s.cfg.ReminderCron, s.SendDailyDigest); err != nil {
		return fmt.Errorf("reminder schedule %q: %w", s.cfg.ReminderCron, err)
	}
	c.Start()
	s.log.Info("work-day reminder scheduler started", zap.String("cron", s.cfg.ReminderCron))
	return nil
}

// SendDailyDigest texts the owner one message summarizing every work day
// scheduled for today.
func (s *ReminderService) SendDailyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	workDays, err := s.workDays.GetAll(ctx)
	if err != nil {
		s.log.Warn("reminder digest: fetching work days failed", zap.Error(err))
		return
	}

	today := s.todaysWork(workDays, time.Now())
	if len(today) == 0 {
		s.log.Info("reminder digest: nothing scheduled today")
		return
	}

	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		s.log.Warn("reminder digest: fetching projects failed", zap.Error(err))
		return
	}
	customers, err := s.customers.GetAll(ctx)
	if err != nil {
		s.log.Warn("reminder digest: fetching customers failed", zap.Error(err))
		return
	}
	ix := NewNameIndex(projects, customers)

	var lines []string
	for _, wd := range today {
		line := fmt.Sprintf("%s (%s) - %s hrs", ix.ProjectName(wd.ProjectID), ix.CustomerNameByProject(wd.ProjectID), wd.Hours.String())
		if wd.Notes != "" {
			line += ": " + wd.Notes
		}
		lines = append(lines, line)
	}
	body := fmt.Sprintf("Today's schedule (%d jobs):\n%s", len(today), strings.Join(lines, "\n"))

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.cfg.OwnerPhone)
	params.SetFrom(s.cfg.TwilioFromPhone)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.Warn("reminder digest: send failed", zap.Error(err))
		return
	}
	if resp.Sid != nil {
		s.log.Info("reminder digest sent", zap.String("sid", *resp.Sid), zap.Int("jobs", len(today)))
	} else {
		s.log.Info("reminder digest sent, no SID returned", zap.Int("jobs", len(today)))
	}
}

// todaysWork keeps work days whose date falls on now's calendar day.
func (s *ReminderService) todaysWork(workDays []models.WorkDay, now time.Time) []models.WorkDay {
	var out []models.WorkDay
	for _, wd := range workDays {
		d := models.ParseTime(wd.Date)
		if d.IsZero() {
			continue
		}
		if d.Year() == now.Year() && d.YearDay() == now.YearDay() {
			out = append(out, wd)
		}
	}
	return out
}
