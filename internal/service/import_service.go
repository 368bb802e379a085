package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/balance/internal/error_values"
	"github.com/limbo/balance/internal/repository"
	"github.com/limbo/balance/pkg/dateutil"
	"github.com/limbo/balance/pkg/entity"
)

// Shapes of the JSON the mobile and web apps kept in local storage
type legacyExport struct {
	Events             []legacyEvent   `json:"events"`
	WellnessActivities []legacyEvent   `json:"wellnessActivities"`
	MoodEntries        []legacyMood    `json:"moodEntries"`
	Notes              []legacyNote    `json:"notes"`
	Habits             legacyHabitSets `json:"habits"`
}

type legacyEvent struct {
	ID          any    `json:"id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	StartDate   string `json:"startDate"`
	Time        string `json:"time"`
	Duration    any    `json:"duration"`
}

type legacyMood struct {
	ID   any    `json:"id"`
	Mood string `json:"mood"`
	Note string `json:"note"`
	Date string `json:"date"`
}

type legacyNote struct {
	ID        any    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
}

type legacyHabitSets struct {
	AM []legacyHabit `json:"am"`
	PM []legacyHabit `json:"pm"`
}

type legacyHabit struct {
	ID        any    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

type ImportService struct {
	records RecordsRepos
	habits  repository.HabitsRepositoryI
	loc     *time.Location
}

func NewImportService(repos RecordsRepos, habitsRepo repository.HabitsRepositoryI, loc *time.Location) *ImportService {
	if repos.Events == nil || repos.Activities == nil || repos.Moods == nil || repos.Notes == nil || habitsRepo == nil {
		log.Fatal("on import service provided nil repos")
	}
	if loc == nil {
		loc = time.Local
	}
	return &ImportService{
		records: repos,
		habits:  habitsRepo,
		loc:     loc,
	}
}

func (is *ImportService) Import(ctx context.Context, r io.Reader) (*ImportReport, error) {
	var export legacyExport
	if err := sonic.ConfigDefault.NewDecoder(r).Decode(&export); err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("decoding legacy export error: "+err.Error()))
	}
	report := &ImportReport{Skipped: make([]entity.MalformedRecordWarning, 0)}
	skip := func(id any, kind entity.RecordKind, reason string) {
		report.Skipped = append(report.Skipped, entity.MalformedRecordWarning{
			RecordID: legacyID(id),
			Kind:     kind,
			Reason:   reason,
		})
	}

	for _, e := range export.Events {
		event, reason := is.event(e)
		if reason != "" {
			skip(e.ID, entity.KindEvent, reason)
			continue
		}
		if _, err := is.records.Events.Create(ctx, event); err != nil {
			return report, repoError("events", err)
		}
		report.Events++
	}
	for _, a := range export.WellnessActivities {
		activity, reason := is.activity(a)
		if reason != "" {
			skip(a.ID, entity.KindWellness, reason)
			continue
		}
		if _, err := is.records.Activities.Create(ctx, activity); err != nil {
			return report, repoError("activities", err)
		}
		report.Wellness++
	}
	for _, m := range export.MoodEntries {
		entry, reason := is.mood(m)
		if reason != "" {
			skip(m.ID, entity.KindMood, reason)
			continue
		}
		if _, err := is.records.Moods.Create(ctx, entry); err != nil {
			return report, repoError("moods", err)
		}
		report.Moods++
	}
	for _, n := range export.Notes {
		note, reason := is.note(n)
		if reason != "" {
			skip(n.ID, entity.KindNote, reason)
			continue
		}
		if _, err := is.records.Notes.Create(ctx, note); err != nil {
			return report, repoError("notes", err)
		}
		report.Notes++
	}
	periods := []struct {
		period entity.HabitPeriod
		habits []legacyHabit
	}{
		{entity.PeriodMorning, export.Habits.AM},
		{entity.PeriodEvening, export.Habits.PM},
	}
	for _, p := range periods {
		for _, h := range p.habits {
			day, err := dateutil.ParseDay(h.Date)
			if err != nil || strings.TrimSpace(h.Name) == "" {
				skip(h.ID, entity.KindHabit, "habit without name or with bad date")
				continue
			}
			_, err = is.habits.Create(ctx, &entity.Habit{
				Name:      strings.TrimSpace(h.Name),
				Period:    p.period,
				Completed: h.Completed,
				Date:      day,
			})
			if err != nil {
				if errors.Is(err, errorvalues.ErrHabitExists) {
					skip(h.ID, entity.KindHabit, "duplicate habit for the day")
					continue
				}
				return report, repoError("habits", err)
			}
			report.Habits++
		}
	}
	return report, nil
}

func (is *ImportService) event(e legacyEvent) (*entity.Event, string) {
	date := e.Date
	if date == "" {
		date = e.StartDate
	}
	startsAt, hasTime, err := dateutil.ParseTimestamp(date, e.Time, is.loc)
	if err != nil {
		return nil, err.Error()
	}
	duration, err := legacyDuration(e.Duration)
	if err != nil {
		return nil, err.Error()
	}
	category := entity.Category(strings.ToLower(e.Category))
	if !category.Valid() {
		category = entity.CategoryPersonal
	}
	title := strings.TrimSpace(e.Title)
	if title == "" {
		title = strings.TrimSpace(e.Name)
	}
	if title == "" {
		return nil, "missing title"
	}
	return &entity.Event{
		Title:           title,
		Description:     e.Description,
		Category:        category,
		StartsAt:        startsAt,
		AllDay:          !hasTime,
		DurationMinutes: duration,
	}, ""
}

func (is *ImportService) activity(a legacyEvent) (*entity.WellnessActivity, string) {
	event, reason := is.event(a)
	if reason != "" {
		return nil, reason
	}
	category := entity.Category(strings.ToLower(a.Category))
	if !category.Valid() {
		category = entity.CategoryWellness
	}
	return &entity.WellnessActivity{
		Name:            event.Title,
		Category:        category,
		StartsAt:        event.StartsAt,
		AllDay:          event.AllDay,
		DurationMinutes: event.DurationMinutes,
	}, ""
}

func (is *ImportService) mood(m legacyMood) (*entity.MoodEntry, string) {
	level, err := entity.ParseMoodLevel(m.Mood)
	if err != nil {
		return nil, err.Error()
	}
	// Moods were stamped with a full ISO instant
	loggedAt, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(m.Date))
	if err != nil {
		loggedAt, _, err = dateutil.ParseTimestamp(m.Date, "", is.loc)
		if err != nil {
			return nil, err.Error()
		}
	}
	return &entity.MoodEntry{
		Level:    level,
		Note:     m.Note,
		LoggedAt: loggedAt.In(is.loc),
	}, ""
}

func (is *ImportService) note(n legacyNote) (*entity.Note, string) {
	date := n.Date
	if date == "" {
		date = n.CreatedAt
	}
	day, _, err := dateutil.ParseTimestamp(date, "", is.loc)
	if err != nil {
		return nil, err.Error()
	}
	if strings.TrimSpace(n.Content) == "" && strings.TrimSpace(n.Title) == "" {
		return nil, "empty note"
	}
	return &entity.Note{
		Title:   n.Title,
		Content: n.Content,
		Day:     day,
	}, ""
}

// legacyDuration accepts minutes as a number or a numeric string
func legacyDuration(v any) (int, error) {
	var minutes int
	switch d := v.(type) {
	case nil:
		return entity.DefaultDurationMinutes, nil
	case float64:
		minutes = int(d)
	case string:
		if strings.TrimSpace(d) == "" {
			return entity.DefaultDurationMinutes, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil {
			return 0, errors.New("bad duration " + strconv.Quote(d))
		}
		minutes = n
	default:
		return 0, fmt.Errorf("bad duration %v", v)
	}
	if minutes < 0 {
		return 0, errors.New("negative duration")
	}
	return minutes, nil
}

func legacyID(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
