//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hosteed/internal/domain/commission"
	"hosteed/internal/domain/user"
	"hosteed/internal/handler/api"
	reqdto "hosteed/internal/handler/dto/request"
	resdto "hosteed/internal/handler/dto/response"
	"hosteed/internal/handler/validation"
	"hosteed/internal/pkg/errs"
	"hosteed/internal/usecase/commands"
	"hosteed/tests/common/builder"
	"hosteed/tests/common/httptest"
	"hosteed/tests/common/testutil"
	commandsmock "hosteed/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommissionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCommissionRuleCommands
}

func (s *CommissionHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.Register())
}

func (s *CommissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCommissionRuleCommands(s.mockCtrl)
	h := api.NewCommissionHandler(s.mockCommands)

	auth := fakeAuth(user.RoleAdmin)
	s.router.POST("/admin/commission-rules", auth, h.Create)
	s.router.PUT("/admin/commission-rules/:id", auth, h.Update)
}

func (s *CommissionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCommissionHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommissionHandlerTestSuite))
}

func (s *CommissionHandlerTestSuite) TestCreate() {
	reqBody := reqdto.CommissionRuleRequest{
		Title:                 "Default",
		HostCommissionRate:    "0.03",
		HostCommissionFixed:   "0",
		ClientCommissionRate:  "0.05",
		ClientCommissionFixed: "1",
	}

	s.Run("success: active defaults to true", func() {
		rule := builder.GlobalRule(builder.Rates("0.03", "0", "0.05", "1"))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), user.NewActor(testActorID, user.RoleAdmin)).
			DoAndReturn(func(_ context.Context, in commands.CommissionRuleInput, _ user.Actor) (*commission.Rule, error) {
				s.True(in.Active)
				s.Nil(in.PropertyTypeID)
				s.True(builder.Dec("0.05").Equal(in.Rates.ClientRate))
				return rule, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/commission-rules", reqBody, "bearer-token")
		var body resdto.CommissionRuleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(rule.ID().String(), body.ID)
		s.Equal("0.05", body.ClientCommissionRate)
		s.Nil(body.PropertyTypeID)
	})

	s.Run("error: 400 on non-decimal rate", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("hostCommissionRate", "3%"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/commission-rules", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when a rate is out of range", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Validation(errs.New("commission rate must be within [0, 1]")))
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("clientCommissionRate", "1.5"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/commission-rules", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "commission rate")
	})
}

func (s *CommissionHandlerTestSuite) TestUpdate() {
	ruleID := uuid.New()
	inactive := false
	reqBody := reqdto.CommissionRuleRequest{
		Title:                 "Villas",
		HostCommissionRate:    "0.02",
		HostCommissionFixed:   "0",
		ClientCommissionRate:  "0.04",
		ClientCommissionFixed: "0",
		Active:                &inactive,
	}

	s.Run("success: 200", func() {
		rule := builder.GlobalRule(builder.Rates("0.02", "0", "0.04", "0"))
		s.mockCommands.EXPECT().Update(gomock.Any(), ruleID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in commands.CommissionRuleInput, _ user.Actor) (*commission.Rule, error) {
				s.False(in.Active)
				return rule, nil
			})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/commission-rules/"+ruleID.String(), reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for unknown rule", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), ruleID, gomock.Any(), gomock.Any()).
			Return(nil, errs.NotFound(errs.New("commission rule not found")))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/commission-rules/"+ruleID.String(), reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}
