package services

import (
	"testing"

	"mockapi-backend/models"
	"mockapi-backend/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository implements the UserRepositoryInterface for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) (*models.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUser(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers() []*models.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*models.User)
}

func (m *MockUserRepository) UpdateUser(id string, upd *models.UserUpdate) (*models.User, error) {
	args := m.Called(id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) GetOrganization(id string) (*models.Organization, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

// UserServiceTestSuite contains the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	userService *UserService
	mockRepo    *MockUserRepository
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockUserRepository{}
	cfg := &models.Config{DefaultPerPage: 10, MaxPerPage: 100}
	suite.userService = NewUserService(suite.mockRepo, cfg, logger.NewLogger("error", "text"))
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestCreateUser() {
	expected := &models.User{ID: "USER001", Name: "Alice", Email: "alice@example.com"}

	suite.mockRepo.On("CreateUser", mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "Alice" && u.Email == "alice@example.com"
	})).Return(expected, nil)

	result, err := suite.userService.CreateUser(&models.UserInput{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "USER001", result.ID)
}

func (suite *UserServiceTestSuite) TestCreateUserValidationErrors() {
	testCases := []struct {
		name          string
		input         *models.UserInput
		expectedField string
		expectedError string
	}{
		{
			name:          "Missing name",
			input:         &models.UserInput{Email: "a@b.co"},
			expectedField: "name",
			expectedError: "Field 'name' is required and cannot be empty",
		},
		{
			name:          "Missing email",
			input:         &models.UserInput{Name: "Alice"},
			expectedField: "email",
			expectedError: "Field 'email' is required and cannot be empty",
		},
		{
			name:          "Email without at sign",
			input:         &models.UserInput{Name: "Alice", Email: "alice.example.com"},
			expectedField: "email",
			expectedError: "Field 'email' must be a valid email address",
		},
		{
			name:          "Email without TLD",
			input:         &models.UserInput{Name: "Alice", Email: "alice@example"},
			expectedField: "email",
			expectedError: "Field 'email' must be a valid email address",
		},
		{
			name:          "Email with single-letter TLD",
			input:         &models.UserInput{Name: "Alice", Email: "alice@example.c"},
			expectedField: "email",
			expectedError: "Field 'email' must be a valid email address",
		},
		{
			name:          "Bad id format",
			input:         &models.UserInput{Name: "Alice", Email: "a@b.co", ID: "USR001"},
			expectedField: "id",
			expectedError: "Field 'id' must follow format 'USER###'",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			result, err := suite.userService.CreateUser(tc.input)

			assert.Nil(suite.T(), result)
			assert.Equal(suite.T(), models.ErrorKindValidation, models.KindOfError(err))
			assert.Equal(suite.T(), tc.expectedField, models.FieldOfError(err))
			assert.Contains(suite.T(), err.Error(), tc.expectedError)
			suite.mockRepo.AssertNotCalled(suite.T(), "CreateUser", mock.Anything)
		})
	}
}

func (suite *UserServiceTestSuite) TestCreateUserAcceptsPlusAddressing() {
	expected := &models.User{ID: "USER001", Name: "Alice", Email: "alice+test@sub.example.co.uk"}
	suite.mockRepo.On("CreateUser", mock.Anything).Return(expected, nil)

	result, err := suite.userService.CreateUser(&models.UserInput{
		Name:  "Alice",
		Email: "alice+test@sub.example.co.uk",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result)
}

// TestCreateUserDuplicateEmailPassedThrough verifies store-level uniqueness
// failures surface unchanged.
func (suite *UserServiceTestSuite) TestCreateUserDuplicateEmailPassedThrough() {
	dupErr := models.NewDuplicateError("User with email 'alice@example.com' already exists")
	suite.mockRepo.On("CreateUser", mock.Anything).Return(nil, dupErr)

	result, err := suite.userService.CreateUser(&models.UserInput{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), models.ErrorKindDuplicate, models.KindOfError(err))
}

func (suite *UserServiceTestSuite) TestCreateUserDanglingOrganizationPassedThrough() {
	refErr := models.NewReferenceError("Organization with ID 'ORG999' does not exist")
	suite.mockRepo.On("CreateUser", mock.Anything).Return(nil, refErr)

	result, err := suite.userService.CreateUser(&models.UserInput{
		Name:           "Alice",
		Email:          "alice@example.com",
		OrganizationID: "ORG999",
	})

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), models.ErrorKindReference, models.KindOfError(err))
}

// TestGetUserEmbedsOrganization verifies the detail payload carries the
// referenced organization.
func (suite *UserServiceTestSuite) TestGetUserEmbedsOrganization() {
	user := &models.User{ID: "USER001", Name: "Alice", OrganizationID: "ORG001"}
	org := &models.Organization{ID: "ORG001", Name: "Acme", Type: "enterprise"}

	suite.mockRepo.On("GetUser", "USER001").Return(user, nil)
	suite.mockRepo.On("GetOrganization", "ORG001").Return(org, nil)

	detail, err := suite.userService.GetUser("USER001")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "USER001", detail.ID)
	assert.NotNil(suite.T(), detail.Organization)
	assert.Equal(suite.T(), "ORG001", detail.Organization.ID)
}

func (suite *UserServiceTestSuite) TestGetUserWithoutOrganization() {
	user := &models.User{ID: "USER002", Name: "Bob"}
	suite.mockRepo.On("GetUser", "USER002").Return(user, nil)

	detail, err := suite.userService.GetUser("USER002")

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), detail.Organization)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetOrganization", mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUserInvalidEmail() {
	badEmail := "not-an-email"
	result, err := suite.userService.UpdateUser("USER001", &models.UserUpdate{Email: &badEmail})

	assert.Nil(suite.T(), result)
	assert.Equal(suite.T(), models.ErrorKindValidation, models.KindOfError(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestListUsersFilterByOrganization() {
	users := []*models.User{
		{ID: "USER001", Name: "Alice", OrganizationID: "ORG001"},
		{ID: "USER002", Name: "Bob", OrganizationID: "ORG002"},
		{ID: "USER003", Name: "Carol", OrganizationID: "ORG001"},
	}
	suite.mockRepo.On("ListUsers").Return(users)

	result, err := suite.userService.ListUsers(map[string]string{"organization_id": "ORG001"}, 1, 10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, result.Total)
}
