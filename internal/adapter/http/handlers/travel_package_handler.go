package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	request "travel_backoffice/internal/adapter/http/dto/request"
	response "travel_backoffice/internal/adapter/http/dto/response"
	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase"
	"travel_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	formFieldImage             = "image"
	formFieldPdf               = "pdf"
	formFieldBoardingLocations = "boardingLocations"
)

var errUploadTooLarge = pkg.NewDomainErrorSimple("PAYLOAD_TOO_LARGE", "Uploaded files exceed the size limit", http.StatusRequestEntityTooLarge)

type TravelPackageHandler struct {
	usecase        usecase.ITravelPackageUseCase
	maxUploadBytes int64
}

// NewTravelPackageHandler builds the handler. maxUploadMB bounds the multipart
// body of create and update; zero disables the limit.
func NewTravelPackageHandler(uc usecase.ITravelPackageUseCase, maxUploadMB int64) *TravelPackageHandler {
	return &TravelPackageHandler{usecase: uc, maxUploadBytes: maxUploadMB << 20}
}

// CreateTravelPackage godoc
// @Summary      Create a travel package
// @Description  Multipart form. The image part is required; a pdf part or the pdfUrl field is required.
// @Tags         travel-packages
// @Accept       multipart/form-data
// @Produce      json
// @Param        name               formData  string  true   "Package name"
// @Param        price              formData  number  true   "Price"
// @Param        description        formData  string  true   "Description"
// @Param        maxPeople          formData  int     true   "Seats"
// @Param        boardingLocations  formData  string  true   "Boarding locations (JSON array or repeated field)"
// @Param        travelMonth        formData  string  true   "Travel month"
// @Param        travelDate         formData  string  false  "dd/mm/yyyy"
// @Param        returnDate         formData  string  false  "dd/mm/yyyy"
// @Param        travelTime         formData  string  false  "HH:mm"
// @Param        pdfUrl             formData  string  false  "External PDF url"
// @Param        image              formData  file    true   "Cover image"
// @Param        pdf                formData  file    false  "Itinerary PDF"
// @Success      201  {object}  response.TravelPackageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /travel-packages [post]
func (h *TravelPackageHandler) CreateTravelPackage(c *gin.Context) {
	h.limitBody(c)

	var payload request.CreateTravelPackageRequest
	if err := c.ShouldBindWith(&payload, binding.FormMultipart); err != nil {
		appErr := invalidPayload("travel package", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	image, pdf, appErr := readMediaFiles(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pkgCreated, err := h.usecase.Create(c.Request.Context(), payload.ToInput(image, pdf))
	if err != nil {
		appErr := mapTravelPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTravelPackage(pkgCreated))
}

// ListTravelPackages godoc
// @Summary  List every travel package
// @Tags     travel-packages
// @Produce  json
// @Param    sortBy     query  string  false  "travelDate, created_at, name or price"
// @Param    sortOrder  query  string  false  "asc or desc"
// @Success  200  {array}  response.TravelPackageResponse
// @Router   /travel-packages [get]
func (h *TravelPackageHandler) ListTravelPackages(c *gin.Context) {
	var q request.ListTravelPackagesQuery
	_ = c.ShouldBindQuery(&q)

	pkgs, err := h.usecase.List(c.Request.Context(), entities.ParseSortField(q.SortBy), entities.ParseSortOrder(q.SortOrder))
	if err != nil {
		appErr := mapTravelPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTravelPackages(pkgs))
}

// FilterTravelPackages godoc
// @Summary  Month filtered, paginated listing
// @Tags     travel-packages
// @Produce  json
// @Param    month      query  string  false  "Month name prefix, case insensitive"
// @Param    page       query  int     false  "Page (default 1)"
// @Param    limit      query  int     false  "Page size (default 10, max 100)"
// @Param    sortBy     query  string  false  "travelDate, created_at, name or price"
// @Param    sortOrder  query  string  false  "asc or desc"
// @Success  200  {object}  response.TravelPackagePageResponse
// @Router   /travel-packages/filter [get]
func (h *TravelPackageHandler) FilterTravelPackages(c *gin.Context) {
	var q request.FilterTravelPackagesQuery
	_ = c.ShouldBindQuery(&q)

	page, meta, err := h.usecase.Filter(c.Request.Context(), q.ToQuery())
	if err != nil {
		appErr := mapTravelPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTravelPackagePage(page, meta))
}

// GetTravelPackage godoc
// @Summary  Get a travel package
// @Tags     travel-packages
// @Produce  json
// @Param    id  path  string  true  "Package id"
// @Success  200  {object}  response.TravelPackageResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /travel-packages/{id} [get]
func (h *TravelPackageHandler) GetTravelPackage(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTravelPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTravelPackage(p))
}

// GetTravelPackageImage godoc
// @Summary  Get the image url of a travel package
// @Tags     travel-packages
// @Produce  json
// @Param    id  path  string  true  "Package id"
// @Success  200  {object}  response.ImageURLResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /travel-packages/{id}/image [get]
func (h *TravelPackageHandler) GetTravelPackageImage(c *gin.Context) {
	url, err := h.usecase.GetImageURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTravelPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ImageURLResponse{ImageURL: url})
}

// UpdateTravelPackage godoc
// @Summary      Partially update a travel package
// @Description  JSON body, or a multipart form when replacing the image or pdf. Absent fields keep their value.
// @Tags         travel-packages
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                                true  "Package id"
// @Param        body  body  request.UpdateTravelPackageRequest  false "Fields to change"
// @Success      200  {object}  response.TravelPackageResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /travel-packages/{id} [put]
func (h *TravelPackageHandler) UpdateTravelPackage(c *gin.Context) {
	var (
		payload    request.UpdateTravelPackageRequest
		image, pdf *usecase.MediaFile
	)

	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		h.limitBody(c)
		if err := c.ShouldBindWith(&payload, binding.FormMultipart); err != nil {
			appErr := invalidPayload("travel package", err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if values, ok := c.GetPostFormArray(formFieldBoardingLocations); ok {
			locs := request.ParseFormBoardingLocations(values)
			payload.BoardingLocations = &locs
		}
		var appErr *pkg.AppError
		if image, pdf, appErr = readMediaFiles(c); appErr != nil {
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	} else if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := invalidPayload("travel package", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), usecase.UpdateTravelPackageInput{
		Patch: payload.ToPatch(),
		Image: image,
		Pdf:   pdf,
	})
	if err != nil {
		appErr := mapTravelPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTravelPackage(updated))
}

// DeleteTravelPackage godoc
// @Summary   Delete a travel package
// @Tags      travel-packages
// @Security  BearerAuth
// @Param     id  path  string  true  "Package id"
// @Success   204
// @Failure   404  {object}  pkg.HTTPError
// @Failure   409  {object}  pkg.HTTPError
// @Router    /travel-packages/{id} [delete]
func (h *TravelPackageHandler) DeleteTravelPackage(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTravelPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TravelPackageHandler) limitBody(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}
}

// readMediaFiles returns nil for parts that were not sent.
func readMediaFiles(c *gin.Context) (*usecase.MediaFile, *usecase.MediaFile, *pkg.AppError) {
	image, err := readFormFile(c, formFieldImage)
	if err != nil {
		return nil, nil, mapUploadError(err)
	}
	pdf, err := readFormFile(c, formFieldPdf)
	if err != nil {
		return nil, nil, mapUploadError(err)
	}
	return image, pdf, nil
}

func readFormFile(c *gin.Context, field string) (*usecase.MediaFile, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return openMediaFile(header)
}

func openMediaFile(header *multipart.FileHeader) (*usecase.MediaFile, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &usecase.MediaFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func mapUploadError(err error) *pkg.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errUploadTooLarge
	}
	return pkg.NewDomainError("INVALID_REQUEST", "Could not read uploaded file", err, http.StatusBadRequest)
}

func invalidPayload(resource string, err error) *pkg.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errUploadTooLarge
	}
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid "+resource+" payload: "+err.Error(), err, http.StatusBadRequest)
}

func mapTravelPackageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTravelPackageID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid travel package id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageRequired), errors.Is(err, usecase.ErrPdfRequired), errors.Is(err, usecase.ErrInvalidTravelPackage):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTravelPackageNotFound):
		return pkg.NewDomainErrorSimple("TRAVEL_PACKAGE_NOT_FOUND", "Travel package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrImageNotFound):
		return pkg.NewDomainErrorSimple("IMAGE_NOT_FOUND", "Travel package has no image", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageHasBookings):
		return pkg.NewDomainError("TRAVEL_PACKAGE_HAS_BOOKINGS", "Travel package still has bookings", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
