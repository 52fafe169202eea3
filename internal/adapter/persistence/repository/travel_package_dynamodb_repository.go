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

type travelPackageItem struct {
	ID                string   `dynamodbav:"id"`
	Name              string   `dynamodbav:"name"`
	Price             float64  `dynamodbav:"price"`
	Description       string   `dynamodbav:"description"`
	ImageURL          string   `dynamodbav:"image_url,omitempty"`
	PdfURL            string   `dynamodbav:"pdf_url"`
	MaxPeople         int      `dynamodbav:"max_people"`
	BoardingLocations []string `dynamodbav:"boarding_locations"`
	TravelMonth       string   `dynamodbav:"travel_month"`
	TravelMonthKey    string   `dynamodbav:"travel_month_key"`
	TravelDate        string   `dynamodbav:"travel_date,omitempty"`
	ReturnDate        string   `dynamodbav:"return_date,omitempty"`
	TravelTime        string   `dynamodbav:"travel_time,omitempty"`
	BookedCount       int      `dynamodbav:"booked_count"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// TravelPackageDynamoRepository persists TravelPackage entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// booked_count is owned by BookingDynamoRepository: Update never writes it, so a
// package edit cannot lose a concurrent seat reservation.

type TravelPackageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITravelPackageRepository = (*TravelPackageDynamoRepository)(nil)

func NewTravelPackageDynamoRepository(ddb *dynamodb.Client, tableName string) *TravelPackageDynamoRepository {
	return &TravelPackageDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TravelPackageDynamoRepository) Create(ctx context.Context, p entities.TravelPackage) (entities.TravelPackage, error) {
	p.BookedCount = 0
	av, err := attributevalue.MarshalMap(toTravelPackageItem(p))
	if err != nil {
		return entities.TravelPackage{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.TravelPackage{}, err
	}
	return p, nil
}

func (r *TravelPackageDynamoRepository) GetByID(ctx context.Context, id string) (entities.TravelPackage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TravelPackage{}, err
	}
	if len(out.Item) == 0 {
		return entities.TravelPackage{}, nil
	}

	var it travelPackageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TravelPackage{}, err
	}
	return fromTravelPackageItem(it), nil
}

func (r *TravelPackageDynamoRepository) FindAll(ctx context.Context) ([]entities.TravelPackage, error) {
	items, err := scanAll[travelPackageItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return fromTravelPackageItems(items), nil
}

// FindByMonth scans with a begins_with filter on travel_month_key, so "março"
// matches both "Março" and "Março/2026". The total comes from a separate COUNT
// scan with the same filter; sorting and slicing happen in memory.
func (r *TravelPackageDynamoRepository) FindByMonth(ctx context.Context, q entities.PackageQuery) (entities.PackagePage, error) {
	q = q.Normalized()

	items, err := scanAll[travelPackageItem](ctx, r.ddb, r.monthScan(q.Month))
	if err != nil {
		return entities.PackagePage{}, err
	}
	total, err := countScan(ctx, r.ddb, r.monthScan(q.Month))
	if err != nil {
		return entities.PackagePage{}, err
	}

	pkgs := fromTravelPackageItems(items)
	entities.SortTravelPackages(pkgs, q.SortBy, q.SortOrder)
	return entities.PackagePage{
		Data:  entities.Paginate(pkgs, q.Page, q.Limit),
		Total: total,
		Pages: entities.TotalPages(total, q.Limit),
	}, nil
}

func (r *TravelPackageDynamoRepository) monthScan(month string) *dynamodb.ScanInput {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if month == "" {
		return in
	}
	in.FilterExpression = aws.String("begins_with(#mk, :mk)")
	in.ExpressionAttributeNames = map[string]string{"#mk": "travel_month_key"}
	in.ExpressionAttributeValues = map[string]types.AttributeValue{
		":mk": &types.AttributeValueMemberS{Value: month},
	}
	return in
}

func (r *TravelPackageDynamoRepository) Update(ctx context.Context, p entities.TravelPackage) (entities.TravelPackage, error) {
	locations, err := attributevalue.Marshal([]string(p.BoardingLocations.Clone()))
	if err != nil {
		return entities.TravelPackage{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(p.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #name = :name, #price = :price, #description = :description, " +
			"#image_url = :image_url, #pdf_url = :pdf_url, #max_people = :max_people, " +
			"#boarding_locations = :boarding_locations, #travel_month = :travel_month, " +
			"#travel_month_key = :travel_month_key, #travel_date = :travel_date, " +
			"#return_date = :return_date, #travel_time = :travel_time, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                 "id",
			"#name":               "name",
			"#price":              "price",
			"#description":        "description",
			"#image_url":          "image_url",
			"#pdf_url":            "pdf_url",
			"#max_people":         "max_people",
			"#boarding_locations": "boarding_locations",
			"#travel_month":       "travel_month",
			"#travel_month_key":   "travel_month_key",
			"#travel_date":        "travel_date",
			"#return_date":        "return_date",
			"#travel_time":        "travel_time",
			"#updated_at":         "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":               &types.AttributeValueMemberS{Value: p.Name},
			":price":              &types.AttributeValueMemberN{Value: floatToString(p.Price)},
			":description":        &types.AttributeValueMemberS{Value: p.Description},
			":image_url":          &types.AttributeValueMemberS{Value: p.ImageURL},
			":pdf_url":            &types.AttributeValueMemberS{Value: p.PdfURL},
			":max_people":         &types.AttributeValueMemberN{Value: strconv.Itoa(p.MaxPeople)},
			":boarding_locations": locations,
			":travel_month":       &types.AttributeValueMemberS{Value: p.TravelMonth},
			":travel_month_key":   &types.AttributeValueMemberS{Value: entities.MonthKey(p.TravelMonth)},
			":travel_date":        &types.AttributeValueMemberS{Value: p.TravelDate},
			":return_date":        &types.AttributeValueMemberS{Value: p.ReturnDate},
			":travel_time":        &types.AttributeValueMemberS{Value: p.TravelTime},
			":updated_at":         &types.AttributeValueMemberS{Value: formatTime(p.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.TravelPackage{}, nil
		}
		return entities.TravelPackage{}, err
	}

	var it travelPackageItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.TravelPackage{}, err
	}
	return fromTravelPackageItem(it), nil
}

func (r *TravelPackageDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toTravelPackageItem(p entities.TravelPackage) travelPackageItem {
	locations := []string(p.BoardingLocations.Clone())
	if locations == nil {
		locations = []string{}
	}
	return travelPackageItem{
		ID:                p.ID,
		Name:              p.Name,
		Price:             p.Price,
		Description:       p.Description,
		ImageURL:          p.ImageURL,
		PdfURL:            p.PdfURL,
		MaxPeople:         p.MaxPeople,
		BoardingLocations: locations,
		TravelMonth:       p.TravelMonth,
		TravelMonthKey:    entities.MonthKey(p.TravelMonth),
		TravelDate:        p.TravelDate,
		ReturnDate:        p.ReturnDate,
		TravelTime:        p.TravelTime,
		BookedCount:       p.BookedCount,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromTravelPackageItem(it travelPackageItem) entities.TravelPackage {
	return entities.TravelPackage{
		ID:                it.ID,
		Name:              it.Name,
		Price:             it.Price,
		Description:       it.Description,
		ImageURL:          it.ImageURL,
		PdfURL:            it.PdfURL,
		MaxPeople:         it.MaxPeople,
		BoardingLocations: entities.BoardingLocations(it.BoardingLocations),
		TravelMonth:       it.TravelMonth,
		TravelDate:        it.TravelDate,
		ReturnDate:        it.ReturnDate,
		TravelTime:        it.TravelTime,
		BookedCount:       it.BookedCount,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func fromTravelPackageItems(items []travelPackageItem) []entities.TravelPackage {
	out := make([]entities.TravelPackage, 0, len(items))
	for _, it := range items {
		out = append(out, fromTravelPackageItem(it))
	}
	return out
}
