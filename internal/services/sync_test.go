package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"littlemaestros/internal/adapters/mainstreet"
	"littlemaestros/internal/domain"
)

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	byID      map[int64]*domain.Session
	nextID    int64
	createErr error
	updateErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		byID:   make(map[int64]*domain.Session),
		nextID: 1,
	}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = f.nextID
	f.nextID++
	copied := *s
	f.byID[s.ID] = &copied
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	if s, ok := f.byID[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) GetByMainstreetID(ctx context.Context, mainstreetID string) (*domain.Session, error) {
	for _, s := range f.byID {
		if s.MainstreetID == mainstreetID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	var out []*domain.Session
	for id := int64(1); id < f.nextID; id++ {
		if s, ok := f.byID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListDetails(ctx context.Context) ([]*domain.SessionDetail, error) {
	var out []*domain.SessionDetail
	for id := int64(1); id < f.nextID; id++ {
		s, ok := f.byID[id]
		if !ok {
			continue
		}
		out = append(out, &domain.SessionDetail{
			ID:           s.ID,
			DayOfWeek:    s.DayOfWeek,
			Time:         s.Time,
			Instructor:   s.Instructor,
			Status:       s.Status,
			StartDate:    s.StartDate,
			EndDate:      s.EndDate,
			SessionName:  s.SessionName,
			LocationName: s.LocationName,
		})
	}
	return out, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	existing, ok := f.byID[s.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.ClassID = s.ClassID
	existing.LocationID = s.LocationID
	existing.SessionName = s.SessionName
	existing.LocationName = s.LocationName
	existing.DayOfWeek = s.DayOfWeek
	existing.Time = s.Time
	existing.Instructor = s.Instructor
	existing.Status = s.Status
	existing.StartDate = s.StartDate
	existing.EndDate = s.EndDate
	existing.Duration = s.Duration
	return nil
}

func (f *fakeSessionRepo) UpdateSyncFields(ctx context.Context, id int64, fields domain.SessionSyncFields) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	s, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.SessionName = fields.SessionName
	s.LocationName = fields.LocationName
	s.DayOfWeek = fields.DayOfWeek
	s.Time = fields.Time
	s.Instructor = fields.Instructor
	s.StartDate = fields.StartDate
	s.EndDate = fields.EndDate
	s.Duration = fields.Duration
	s.MainstreetURL = fields.MainstreetURL
	synced := fields.SyncedAt
	s.SyncedAt = &synced
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSessionRepo) LatestSyncedAt(ctx context.Context) (*time.Time, error) {
	var latest *time.Time
	for _, s := range f.byID {
		if s.SyncedAt == nil {
			continue
		}
		if latest == nil || s.SyncedAt.After(*latest) {
			t := *s.SyncedAt
			latest = &t
		}
	}
	return latest, nil
}

// fakeFetcher returns a fixed page or error.
type fakeFetcher struct {
	html string
	err  error
}

func (f *fakeFetcher) Fetch(ctx context.Context) (string, error) {
	return f.html, f.err
}

func (f *fakeFetcher) Probe(ctx context.Context) (int, string, string, error) {
	if f.err != nil {
		return 0, "", "", f.err
	}
	return 200, "text/html", f.html, nil
}

func classRow(location, schedule, startDate, duration, instructor, registerHref string) string {
	register := ""
	if registerHref != "" {
		register = fmt.Sprintf(`<td class="classTableItemTD"><a href="%s">Register</a></td>`, registerHref)
	}
	return fmt.Sprintf(`
		<tr class="classTableItemTR">
			<td class="classTableItemTD">%s</td>
			<td class="classTableItemTD">%s</td>
			<td class="classTableItemTD">%s</td>
			<td class="classTableItemTD">%s</td>
			<td class="classTableItemTD">%s</td>
			%s
		</tr>`, location, schedule, startDate, duration, instructor, register)
}

func classPage(rows ...string) string {
	page := `<html><body><h2>Spring 2026 Classes</h2><div id="ctl04_ctl00_phClassesClassTable" class="classTable"><table>`
	for _, r := range rows {
		page += r
	}
	return page + `</table></div></body></html>`
}

func newTestSyncService(repo domain.SessionRepository, fetcher domain.PageFetcher) domain.SyncService {
	parser := mainstreet.NewParser("https://app.mainstreetsites.com/dmn2417/")
	return NewSyncService(repo, fetcher, parser, slog.New(slog.DiscardHandler), 5*time.Second)
}

func TestSyncRunInsertsNewSessions(t *testing.T) {
	repo := newFakeSessionRepo()
	fetcher := &fakeFetcher{html: classPage(
		classRow("Washington Park", "Tuesday 10:00 AM", "Mar 03, 2026", "10 weeks", "Ms. Rivera", "register.aspx?cls=4821"),
		classRow("Maplewood Center", "Saturday 9:30 AM", "Mar 07, 2026", "8 weeks", "Mr. Chen", "register.aspx?cls=4822"),
	)}

	report, err := newTestSyncService(repo, fetcher).Run(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, 2, report.Synced)
	assert.Equal(t, 2, report.Total)
	assert.Empty(t, report.Errors)
	assert.False(t, report.Timestamp.IsZero())

	created, err := repo.GetByMainstreetID(context.Background(), "cls-4821")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusOpen, created.Status)
	assert.Equal(t, "Spring 2026", created.SessionName)
	assert.Equal(t, "Washington Park", created.LocationName)
	require.NotNil(t, created.SyncedAt)
	assert.Nil(t, created.ClassID)
	assert.Nil(t, created.LocationID)
}

func TestSyncRunEndDateFromDuration(t *testing.T) {
	tests := []struct {
		duration  string
		wantWeeks int
	}{
		{"10 weeks", 10},
		{"1 week", 1},
		{"8 weeks of fun", 8},
		{"8 Weeks", 8},
		{"ongoing", 10},
		{"", 10},
	}
	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			repo := newFakeSessionRepo()
			fetcher := &fakeFetcher{html: classPage(
				classRow("Washington Park", "Tuesday 10:00 AM", "Mar 03, 2026", tt.duration, "TBD", "register.aspx?cls=1"),
			)}

			_, err := newTestSyncService(repo, fetcher).Run(context.Background())
			require.NoError(t, err)

			s, err := repo.GetByMainstreetID(context.Background(), "cls-1")
			require.NoError(t, err)
			want := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.Local).AddDate(0, 0, tt.wantWeeks*7)
			assert.Equal(t, want, s.EndDate)
		})
	}
}

func TestSyncRunIsIdempotent(t *testing.T) {
	repo := newFakeSessionRepo()
	fetcher := &fakeFetcher{html: classPage(
		classRow("Washington Park", "Tuesday 10:00 AM", "Mar 03, 2026", "10 weeks", "Ms. Rivera", "register.aspx?cls=4821"),
	)}
	svc := newTestSyncService(repo, fetcher)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	// An admin fills the session in between runs.
	s, err := repo.GetByMainstreetID(context.Background(), "cls-4821")
	require.NoError(t, err)
	classID := int64(7)
	repo.byID[s.ID].Status = domain.SessionStatusFull
	repo.byID[s.ID].ClassID = &classID

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)

	// Still one session, with admin-owned fields intact.
	assert.Len(t, repo.byID, 1)
	after, err := repo.GetByMainstreetID(context.Background(), "cls-4821")
	require.NoError(t, err)
	assert.Equal(t, s.ID, after.ID)
	assert.Equal(t, domain.SessionStatusFull, after.Status)
	require.NotNil(t, after.ClassID)
	assert.Equal(t, classID, *after.ClassID)
	assert.Equal(t, "Washington Park", after.LocationName)
}

func TestSyncRunSkipsMalformedRowsButReportsValid(t *testing.T) {
	repo := newFakeSessionRepo()
	fetcher := &fakeFetcher{html: classPage(
		classRow("Washington Park", "Tuesday 10:00 AM", "Mar 03, 2026", "10 weeks", "Ms. Rivera", "register.aspx?cls=1"),
		classRow("Maplewood Center", "", "Mar 07, 2026", "8 weeks", "Mr. Chen", "register.aspx?cls=2"),
		classRow("Riverside Hall", "Friday 3:30 PM", "Mar 06, 2026", "10 weeks", "Ms. Okafor", "register.aspx?cls=3"),
	)}

	report, err := newTestSyncService(repo, fetcher).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Synced)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Skipped)
	assert.Len(t, repo.byID, 2)
}

func TestSyncRunIsolatesPerRecordFailures(t *testing.T) {
	repo := newFakeSessionRepo()
	fetcher := &fakeFetcher{html: classPage(
		classRow("Washington Park", "Tuesday 10:00 AM", "Mar 03, 2026", "10 weeks", "Ms. Rivera", "register.aspx?cls=1"),
		classRow("Maplewood Center", "Saturday 9:30 AM", "Mar 07, 2026", "8 weeks", "Mr. Chen", "register.aspx?cls=2"),
	)}
	svc := newTestSyncService(repo, fetcher)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	// Second run: updates fail, but the run still completes.
	repo.updateErr = errors.New("connection reset")
	report, err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Success)
	assert.Equal(t, 0, report.Synced)
	assert.Equal(t, 2, report.Total)
	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "Failed to sync cls-1")
	assert.Contains(t, report.Errors[0], "connection reset")
}

func TestSyncRunZeroRowsReturnsDiagnostics(t *testing.T) {
	repo := newFakeSessionRepo()
	fetcher := &fakeFetcher{html: "<html><body><p>Be right back</p></body></html>"}

	report, err := newTestSyncService(repo, fetcher).Run(context.Background())

	assert.Nil(t, report)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSessionsFound)

	var diag *domain.SyncDiagnosticError
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, 0, diag.Debug.RowMatchCount)
	assert.False(t, diag.Debug.HasTable)
	assert.NotZero(t, diag.Debug.HTMLLength)
	assert.Empty(t, repo.byID)
}

func TestSyncRunFetchFailure(t *testing.T) {
	repo := newFakeSessionRepo()
	fetcher := &fakeFetcher{err: errors.New("mainstreet returned status: 503 Service Unavailable")}

	report, err := newTestSyncService(repo, fetcher).Run(context.Background())

	assert.Nil(t, report)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoSessionsFound)
	assert.Contains(t, err.Error(), "503")
	assert.Empty(t, repo.byID)
}

func TestDurationWeeks(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"10 weeks", 10},
		{"1 week", 1},
		{"12weeks", 12},
		{"8 Weeks", 8},
		{"6 WEEKS", 6},
		{"two weeks", 10},
		{"", 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, durationWeeks(tt.in), tt.in)
	}
}

func TestSyncStatus(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestSyncService(repo, &fakeFetcher{})

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.HasSyncedData)
	assert.Nil(t, status.LastSync)

	synced := time.Now()
	repo.byID[1] = &domain.Session{ID: 1, MainstreetID: "cls-1", SyncedAt: &synced}
	repo.nextID = 2

	status, err = svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.HasSyncedData)
	require.NotNil(t, status.LastSync)
	assert.WithinDuration(t, synced, *status.LastSync, time.Second)
}

func TestSyncProbe(t *testing.T) {
	repo := newFakeSessionRepo()
	fetcher := &fakeFetcher{html: classPage(
		classRow("Washington Park", "Tuesday 10:00 AM", "Mar 03, 2026", "10 weeks", "TBD", "register.aspx?cls=1"),
	)}

	probe, err := newTestSyncService(repo, fetcher).Probe(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 200, probe.Status)
	assert.Equal(t, "text/html", probe.ContentType)
	assert.True(t, probe.HasTable)
	assert.Equal(t, 1, probe.RowMatchCount)
	assert.NotEmpty(t, probe.HTMLSample)
	assert.Empty(t, repo.byID)
}
