package repository

import (
	"context"
	"strconv"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	bookingsTravelPackageIDIndex = "travel_package_id-index"
	bookingsUserIDIndex          = "user_id-index"
)

type bookingItem struct {
	ID               string `dynamodbav:"id"`
	TravelPackageID  string `dynamodbav:"travel_package_id"`
	UserID           string `dynamodbav:"user_id"`
	FullName         string `dynamodbav:"full_name"`
	RG               string `dynamodbav:"rg"`
	CPF              string `dynamodbav:"cpf"`
	BirthDate        string `dynamodbav:"birth_date"`
	Phone            string `dynamodbav:"phone"`
	Email            string `dynamodbav:"email"`
	BoardingLocation string `dynamodbav:"boarding_location"`
	City             string `dynamodbav:"city,omitempty"`
	HowDidYouMeetUs  string `dynamodbav:"how_did_you_meet_us,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI travel_package_id-index: travel_package_id (string)
//   - GSI user_id-index: user_id (string)
//
// Seats are reserved on the package item (booked_count) in the same transaction
// that writes the booking.

type BookingDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	packagesTable string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client, tableName, packagesTable string) *BookingDynamoRepository {
	return &BookingDynamoRepository{ddb: ddb, tableName: tableName, packagesTable: packagesTable}
}

// Create increments booked_count on the package only while it is below maxPeople
// and puts the booking, both in one TransactWriteItems call.
func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking, maxPeople int) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:           aws.String(r.packagesTable),
					Key:                 idKey(b.TravelPackageID),
					UpdateExpression:    aws.String("SET #bc = if_not_exists(#bc, :zero) + :one"),
					ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(#bc) OR #bc < :max)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
						"#bc": "booked_count",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":zero": &types.AttributeValueMemberN{Value: "0"},
						":one":  &types.AttributeValueMemberN{Value: "1"},
						":max":  &types.AttributeValueMemberN{Value: strconv.Itoa(maxPeople)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if reasons := cancellationReasons(err); len(reasons) > 0 && reasons[0] == conditionalCheckFailed {
			return entities.Booking{}, interfaces.ErrCapacityExceeded
		}
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) FindAll(ctx context.Context) ([]entities.Booking, error) {
	items, err := scanAll[bookingItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return fromBookingItems(items), nil
}

func (r *BookingDynamoRepository) FindByTravelPackageID(ctx context.Context, travelPackageID string) ([]entities.Booking, error) {
	items, err := queryAll[bookingItem](ctx, r.ddb, r.indexQuery(bookingsTravelPackageIDIndex, "travel_package_id", travelPackageID))
	if err != nil {
		return nil, err
	}
	return fromBookingItems(items), nil
}

func (r *BookingDynamoRepository) CountByTravelPackageID(ctx context.Context, travelPackageID string) (int, error) {
	return countQuery(ctx, r.ddb, r.indexQuery(bookingsTravelPackageIDIndex, "travel_package_id", travelPackageID))
}

func (r *BookingDynamoRepository) FindByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	items, err := queryAll[bookingItem](ctx, r.ddb, r.indexQuery(bookingsUserIDIndex, "user_id", userID))
	if err != nil {
		return nil, err
	}
	return fromBookingItems(items), nil
}

func (r *BookingDynamoRepository) indexQuery(index, attr, value string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
}

// Delete removes the booking and releases its seat. When the package itself is
// gone (deleted under the orphan policy) only the booking is removed.
func (r *BookingDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if b.ID == "" {
		return false, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName:           aws.String(r.tableName),
					Key:                 idKey(id),
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(r.packagesTable),
					Key:                 idKey(b.TravelPackageID),
					UpdateExpression:    aws.String("SET #bc = #bc - :one"),
					ConditionExpression: aws.String("attribute_exists(#id) AND #bc > :zero"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
						"#bc": "booked_count",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":zero": &types.AttributeValueMemberN{Value: "0"},
						":one":  &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	})
	if err == nil {
		return true, nil
	}

	reasons := cancellationReasons(err)
	switch {
	case len(reasons) > 0 && reasons[0] == conditionalCheckFailed:
		// Deleted concurrently.
		return false, nil
	case len(reasons) > 1 && reasons[1] == conditionalCheckFailed:
		return r.deleteBookingOnly(ctx, id)
	default:
		return false, err
	}
}

func (r *BookingDynamoRepository) deleteBookingOnly(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:               b.ID,
		TravelPackageID:  b.TravelPackageID,
		UserID:           b.UserID,
		FullName:         b.FullName,
		RG:               b.RG,
		CPF:              b.CPF,
		BirthDate:        formatTime(b.BirthDate),
		Phone:            b.Phone,
		Email:            b.Email,
		BoardingLocation: b.BoardingLocation,
		City:             b.City,
		HowDidYouMeetUs:  b.HowDidYouMeetUs,
		CreatedAt:        formatTime(b.CreatedAt),
		UpdatedAt:        formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:               it.ID,
		TravelPackageID:  it.TravelPackageID,
		UserID:           it.UserID,
		FullName:         it.FullName,
		RG:               it.RG,
		CPF:              it.CPF,
		BirthDate:        parseTime(it.BirthDate),
		Phone:            it.Phone,
		Email:            it.Email,
		BoardingLocation: it.BoardingLocation,
		City:             it.City,
		HowDidYouMeetUs:  it.HowDidYouMeetUs,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

func fromBookingItems(items []bookingItem) []entities.Booking {
	out := make([]entities.Booking, 0, len(items))
	for _, it := range items {
		out = append(out, fromBookingItem(it))
	}
	return out
}
