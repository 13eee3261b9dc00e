package feed_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/helpconnect/helpconnect-api/external/geocoding"
	geomocks "github.com/helpconnect/helpconnect-api/external/mocks"
	"github.com/helpconnect/helpconnect-api/feed"
	"github.com/helpconnect/helpconnect-api/feed/mocks"
	"github.com/helpconnect/helpconnect-api/schema"
)

type MutationGatewayTestSuite struct {
	suite.Suite

	ctrl     *gomock.Controller
	writer   *mocks.MockWriter
	geocoder *geomocks.MockGeocoder
	sync     *feed.Synchronizer
	gateway  *feed.MutationGateway
}

func (s *MutationGatewayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.writer = mocks.NewMockWriter(s.ctrl)
	s.geocoder = geomocks.NewMockGeocoder(s.ctrl)
	s.sync = feed.NewSynchronizer([]schema.HelpRequest{ownedRequest("req-1", "user-1")})
	s.gateway = feed.NewMutationGateway(s.writer, s.geocoder, s.sync, "user-1")
}

func (s *MutationGatewayTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func ownedRequest(id, userID string) schema.HelpRequest {
	return schema.HelpRequest{
		ID:           id,
		UserID:       userID,
		Title:        "Need a hand",
		Description:  "Any help appreciated",
		Category:     "General Help",
		UrgencyLevel: schema.UrgencyMedium,
		Status:       schema.StatusOpen,
	}
}

func (s *MutationGatewayTestSuite) TestChangeStatus() {
	req := ownedRequest("req-1", "user-1")

	s.writer.EXPECT().
		Update(gomock.Any(), "req-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]interface{}) error {
			s.Equal(schema.StatusCompleted, fields["status"])
			s.NotEmpty(fields["updated_at"])
			return nil
		})

	updated, err := s.gateway.ChangeStatus(context.Background(), req, schema.StatusCompleted)
	s.NoError(err)
	s.Equal(schema.StatusCompleted, updated.Status)

	// optimistic update landed in the feed
	s.Equal(schema.StatusCompleted, s.sync.Requests()[0].Status)
}

func (s *MutationGatewayTestSuite) TestChangeStatusNotOwner() {
	req := ownedRequest("req-1", "someone-else")

	// no writer expectation: a non-owner call reaches neither the
	// remote store nor the feed
	updated, err := s.gateway.ChangeStatus(context.Background(), req, schema.StatusCompleted)
	s.NoError(err)
	s.Equal(req, updated)
	s.Equal(schema.StatusOpen, s.sync.Requests()[0].Status)
}

func (s *MutationGatewayTestSuite) TestChangeStatusInvalidValue() {
	req := ownedRequest("req-1", "user-1")

	_, err := s.gateway.ChangeStatus(context.Background(), req, "archived")
	s.Equal(feed.ErrInvalidStatus, err)
}

func (s *MutationGatewayTestSuite) TestChangeStatusWriteFails() {
	req := ownedRequest("req-1", "user-1")

	s.writer.EXPECT().
		Update(gomock.Any(), "req-1", gomock.Any()).
		Return(fmt.Errorf("connection reset"))

	updated, err := s.gateway.ChangeStatus(context.Background(), req, schema.StatusCompleted)
	s.Error(err)
	s.Equal(req, updated)

	// the displayed value is untouched after a failed write
	s.Equal(schema.StatusOpen, s.sync.Requests()[0].Status)
}

func (s *MutationGatewayTestSuite) TestChangeUrgency() {
	req := ownedRequest("req-1", "user-1")

	s.writer.EXPECT().
		Update(gomock.Any(), "req-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]interface{}) error {
			s.Equal(schema.UrgencyHigh, fields["urgency_level"])
			return nil
		})

	updated, err := s.gateway.ChangeUrgency(context.Background(), req, schema.UrgencyHigh)
	s.NoError(err)
	s.Equal(schema.UrgencyHigh, updated.UrgencyLevel)
	s.Equal(schema.UrgencyHigh, s.sync.Requests()[0].UrgencyLevel)
}

func (s *MutationGatewayTestSuite) TestChangeUrgencyNotOwner() {
	req := ownedRequest("req-1", "someone-else")

	updated, err := s.gateway.ChangeUrgency(context.Background(), req, schema.UrgencyHigh)
	s.NoError(err)
	s.Equal(req, updated)
}

func (s *MutationGatewayTestSuite) TestSubmitNew() {
	s.geocoder.EXPECT().
		Geocode(gomock.Any(), "221B Baker Street, London").
		Return(&geocoding.Point{Longitude: -0.1586, Latitude: 51.5237}, nil)

	s.writer.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req schema.HelpRequest) (*schema.HelpRequest, error) {
			s.Equal("user-1", req.UserID)
			s.Equal(schema.StatusOpen, req.Status)
			if s.NotNil(req.GeoLocation) {
				s.Equal("POINT(-0.1586 51.5237)", *req.GeoLocation)
			}

			created := req
			created.ID = "req-2"
			return &created, nil
		})

	created, err := s.gateway.SubmitNew(context.Background(), feed.RequestForm{
		Title:        "Need groceries picked up",
		Description:  "Can anyone grab my list from the store?",
		Category:     "Shopping",
		UrgencyLevel: schema.UrgencyMedium,
		Location:     "221B Baker Street, London",
	})
	s.NoError(err)

	// the store-assigned id is carried back through the write echo
	s.Equal("req-2", created.ID)
}

func (s *MutationGatewayTestSuite) TestSubmitNewHiddenLocationSkipsGeocoding() {
	// no geocoder expectation: a hidden location is never looked up
	s.writer.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req schema.HelpRequest) (*schema.HelpRequest, error) {
			s.True(req.LocationHidden)
			s.Nil(req.GeoLocation)
			if s.NotNil(req.Location) {
				s.Equal("221B Baker Street, London", *req.Location)
			}
			return nil, nil
		})

	created, err := s.gateway.SubmitNew(context.Background(), feed.RequestForm{
		Title:          "Need groceries picked up",
		Description:    "Can anyone grab my list from the store?",
		Category:       "Shopping",
		UrgencyLevel:   schema.UrgencyMedium,
		Location:       "221B Baker Street, London",
		LocationHidden: true,
	})
	s.NoError(err)

	// a write that does not echo still yields the constructed entity
	s.Equal("Need groceries picked up", created.Title)
}

func (s *MutationGatewayTestSuite) TestSubmitNewUnresolvableLocation() {
	s.geocoder.EXPECT().
		Geocode(gomock.Any(), "nowhere in particular").
		Return(nil, geocoding.ErrNotFound)

	_, err := s.gateway.SubmitNew(context.Background(), feed.RequestForm{
		Title:        "Need groceries picked up",
		Description:  "Can anyone grab my list from the store?",
		Category:     "Shopping",
		UrgencyLevel: schema.UrgencyMedium,
		Location:     "nowhere in particular",
	})
	s.Equal(feed.ErrLocationNotFound, err)
}

func (s *MutationGatewayTestSuite) TestSubmitNewInvalidEnums() {
	_, err := s.gateway.SubmitNew(context.Background(), feed.RequestForm{
		Title:        "Need groceries picked up",
		Description:  "x",
		Category:     "Shopping",
		UrgencyLevel: "critical",
	})
	s.Equal(feed.ErrInvalidUrgency, err)

	_, err = s.gateway.SubmitNew(context.Background(), feed.RequestForm{
		Title:        "Need groceries picked up",
		Description:  "x",
		Category:     "Rocket Science",
		UrgencyLevel: schema.UrgencyLow,
	})
	s.Equal(feed.ErrInvalidCategory, err)
}

func (s *MutationGatewayTestSuite) TestSubmitEdit() {
	existing := ownedRequest("req-1", "user-1")

	s.geocoder.EXPECT().
		Geocode(gomock.Any(), "10 Downing Street, London").
		Return(&geocoding.Point{Longitude: -0.1276, Latitude: 51.5034}, nil)

	s.writer.EXPECT().
		Update(gomock.Any(), "req-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]interface{}) error {
			s.Equal("Updated title", fields["title"])
			s.Equal(existing.Status, fields["status"])
			return nil
		})

	updated, err := s.gateway.SubmitEdit(context.Background(), existing, feed.RequestForm{
		Title:        "Updated title",
		Description:  "Any help appreciated",
		Category:     "General Help",
		UrgencyLevel: schema.UrgencyMedium,
		Location:     "10 Downing Street, London",
	})
	s.NoError(err)
	s.Equal("Updated title", updated.Title)
	if s.NotNil(updated.GeoLocation) {
		s.Equal("POINT(-0.1276 51.5034)", *updated.GeoLocation)
	}
	s.Equal("Updated title", s.sync.Requests()[0].Title)
}

func (s *MutationGatewayTestSuite) TestSubmitEditNotOwner() {
	existing := ownedRequest("req-1", "someone-else")

	_, err := s.gateway.SubmitEdit(context.Background(), existing, feed.RequestForm{
		Title:        "Updated title",
		Description:  "x",
		Category:     "General Help",
		UrgencyLevel: schema.UrgencyMedium,
	})
	s.Equal(feed.ErrNotOwner, err)
}

func (s *MutationGatewayTestSuite) TestSubmitEditUnchangedLocationKeepsCoordinate() {
	existing := ownedRequest("req-1", "user-1")
	location := "221B Baker Street, London"
	geo := "POINT(-0.1586 51.5237)"
	existing.Location = &location
	existing.GeoLocation = &geo

	// no geocoder expectation: an unchanged location keeps its coordinate
	s.writer.EXPECT().
		Update(gomock.Any(), "req-1", gomock.Any()).
		Return(nil)

	updated, err := s.gateway.SubmitEdit(context.Background(), existing, feed.RequestForm{
		Title:        "Updated title",
		Description:  "Any help appreciated",
		Category:     "General Help",
		UrgencyLevel: schema.UrgencyMedium,
		Location:     location,
	})
	s.NoError(err)
	if s.NotNil(updated.GeoLocation) {
		s.Equal(geo, *updated.GeoLocation)
	}
}

func (s *MutationGatewayTestSuite) TestSubmitEditWriteFails() {
	existing := ownedRequest("req-1", "user-1")

	s.writer.EXPECT().
		Update(gomock.Any(), "req-1", gomock.Any()).
		Return(fmt.Errorf("connection reset"))

	updated, err := s.gateway.SubmitEdit(context.Background(), existing, feed.RequestForm{
		Title:        "Updated title",
		Description:  "Any help appreciated",
		Category:     "General Help",
		UrgencyLevel: schema.UrgencyMedium,
	})
	s.Error(err)
	s.Equal(existing, updated)
	s.Equal("Need a hand", s.sync.Requests()[0].Title)
}

func TestMutationGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(MutationGatewayTestSuite))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "POINT(-0.1586 51.5237)", schema.PointString(-0.1586, 51.5237))
}
