package services

import (
	"context"
	"fmt"
	"html"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/DXD-Magante/dxd-magnate-sub008/logging"
	"github.com/DXD-Magante/dxd-magnate-sub008/models"
	"github.com/DXD-Magante/dxd-magnate-sub008/utils"
)

type UserService struct {
	UsersCollection *mongo.Collection
}

func NewUserService(usersCollection *mongo.Collection) *UserService {
	return &UserService{UsersCollection: usersCollection}
}

// RegisterUser creates a new account with a hashed password.
func (s *UserService) RegisterUser(ctx context.Context, user models.User) (*models.User, error) {
	if err := s.validatePassword(user.Password); err != nil {
		return nil, err
	}
	switch user.Role {
	case models.RoleManager, models.RoleCollaborator, models.RoleClient:
	default:
		return nil, fmt.Errorf("unknown role: %s", user.Role)
	}

	var existing models.User
	if err := s.UsersCollection.FindOne(ctx, bson.M{"username": user.Username}).Decode(&existing); err == nil {
		return nil, fmt.Errorf("user with username already exists")
	}

	user.Username = html.EscapeString(user.Username)
	user.Name = html.EscapeString(user.Name)
	user.LastName = html.EscapeString(user.LastName)
	user.Email = html.EscapeString(user.Email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = string(hashedPassword)
	user.ID = primitive.NewObjectID()
	user.IsActive = true
	user.CreatedAt = time.Now()

	if _, err := s.UsersCollection.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %v", err)
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: New %s account created for %s", user.Role, user.Username)
	return &user, nil
}

// Login checks the credentials and returns a signed session token.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	var user models.User
	if err := s.UsersCollection.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil, fmt.Errorf("invalid username or password")
		}
		return "", nil, fmt.Errorf("failed to fetch user: %v", err)
	}
	if !user.IsActive {
		return "", nil, fmt.Errorf("account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid username or password")
	}

	token, err := utils.GenerateToken(user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %v", err)
	}

	logging.Logger.Infof("Event ID: USER_LOGIN, Description: User %s logged in", user.Username)
	return token, &user, nil
}

// GetProfile returns the account record for a username.
func (s *UserService) GetProfile(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.UsersCollection.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %v", err)
	}
	return &user, nil
}

// UpdateProfile changes the display fields of an account.
func (s *UserService) UpdateProfile(ctx context.Context, username string, name, lastName, email string) (*models.User, error) {
	set := bson.M{}
	if name != "" {
		set["name"] = html.EscapeString(name)
	}
	if lastName != "" {
		set["lastName"] = html.EscapeString(lastName)
	}
	if email != "" {
		set["email"] = html.EscapeString(email)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	result, err := s.UsersCollection.UpdateOne(ctx, bson.M{"username": username}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %v", err)
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("user not found")
	}
	return s.GetProfile(ctx, username)
}

func (s *UserService) validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	hasUppercase := false
	hasDigit := false
	for _, char := range password {
		if char >= 'A' && char <= 'Z' {
			hasUppercase = true
		}
		if char >= '0' && char <= '9' {
			hasDigit = true
		}
	}
	if !hasUppercase {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}
	return nil
}
