package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/image-scaler/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/image-scaler/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/image-scaler/internal/domain/valueobject"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/apperror"
	"github.com/marcos-nsantos/image-scaler/internal/pkg/httputil"
)

type EventHandler struct {
	scaleSvc ScaleService
	queue    JobQueue
}

// NewEventHandler processes notifications inline when queue is nil and
// enqueues them otherwise.
func NewEventHandler(scaleSvc ScaleService, queue JobQueue) *EventHandler {
	return &EventHandler{scaleSvc: scaleSvc, queue: queue}
}

// HandleS3Event godoc
//
//	@Summary		Handle a bucket notification
//	@Description	Keys arrive form-encoded and are decoded before anything looks at them.
//	@Description	Records are handled in order and the first failure ends the request.
//	@Description	When the stream is enabled for events, keys are enqueued and 202 is returned.
//	@Tags			events
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.S3EventRequest	true	"S3 or MinIO notification"
//	@Success		200		{object}	response.EventResponse
//	@Success		202		{object}	response.EnqueuedEventResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Failure		404		{object}	httputil.ErrorResponse	"Source object not found"
//	@Failure		422		{object}	httputil.ErrorResponse	"Source is not a readable image"
//	@Failure		500		{object}	httputil.ErrorResponse
//	@Router			/events/s3 [post]
func (h *EventHandler) HandleS3Event(c *gin.Context) {
	var req request.S3EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	objects := make([]valueobject.ObjectKey, 0, len(req.Records))
	for _, rec := range req.Records {
		key, err := valueobject.DecodeEventKey(rec.S3.Object.Key)
		if err != nil {
			_ = c.Error(err)
			httputil.HandleError(c, apperror.BadRequest("INVALID_KEY", "object key is not valid form encoding"))
			return
		}
		objects = append(objects, valueobject.NewObjectKey(rec.S3.Bucket.Name, key))
	}

	if h.queue != nil {
		h.enqueue(c, objects)
		return
	}

	records := make([]response.ScaleResponse, 0, len(objects))
	for _, obj := range objects {
		result, err := h.scaleSvc.Process(c.Request.Context(), obj.Bucket, obj.Key)
		if err != nil {
			respondError(c, err)
			return
		}
		records = append(records, response.ScaleFromResult(obj.Bucket, obj.Key, result))
	}

	httputil.OK(c, response.EventResponse{Records: records})
}

func (h *EventHandler) enqueue(c *gin.Context, objects []valueobject.ObjectKey) {
	jobs := make([]response.EnqueuedResponse, 0, len(objects))
	for _, obj := range objects {
		id, err := h.queue.Enqueue(c.Request.Context(), obj.Bucket, obj.Key)
		if err != nil {
			respondError(c, err)
			return
		}
		jobs = append(jobs, response.EnqueuedResponse{Bucket: obj.Bucket, Key: obj.Key, JobID: id})
	}

	httputil.Accepted(c, response.EnqueuedEventResponse{Jobs: jobs})
}

// Scale godoc
//
//	@Summary		Scale one object
//	@Description	Runs one object synchronously. The key is taken as-is.
//	@Tags			scale
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.ScaleRequest	true	"Object to scale"
//	@Success		200		{object}	response.ScaleResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		401		{object}	httputil.ErrorResponse
//	@Failure		404		{object}	httputil.ErrorResponse	"Source object not found"
//	@Failure		422		{object}	httputil.ErrorResponse	"Source is not a readable image"
//	@Failure		500		{object}	httputil.ErrorResponse
//	@Router			/scale [post]
func (h *EventHandler) Scale(c *gin.Context) {
	var req request.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.scaleSvc.Process(c.Request.Context(), req.Bucket, req.Key)
	if err != nil {
		respondError(c, err)
		return
	}

	httputil.OK(c, response.ScaleFromResult(req.Bucket, req.Key, result))
}
