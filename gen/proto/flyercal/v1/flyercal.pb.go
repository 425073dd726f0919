// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: flyercal/v1/flyercal.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type UploadFlyerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"` // original name, used for the extension
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	Force         bool                   `protobuf:"varint,3,opt,name=force,proto3" json:"force,omitempty"` // reprocess even when deduplicated
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadFlyerRequest) Reset() {
	*x = UploadFlyerRequest{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadFlyerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadFlyerRequest) ProtoMessage() {}

func (x *UploadFlyerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadFlyerRequest.ProtoReflect.Descriptor instead.
func (*UploadFlyerRequest) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{0}
}

func (x *UploadFlyerRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadFlyerRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadFlyerRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type UploadFlyerResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC 3339
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadFlyerResponse) Reset() {
	*x = UploadFlyerResponse{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadFlyerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadFlyerResponse) ProtoMessage() {}

func (x *UploadFlyerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadFlyerResponse.ProtoReflect.Descriptor instead.
func (*UploadFlyerResponse) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{1}
}

func (x *UploadFlyerResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *UploadFlyerResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *UploadFlyerResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *UploadFlyerResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *UploadFlyerResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type Job struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId               string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	EventId              string                 `protobuf:"bytes,3,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`       // set once extraction succeeded
	Format               string                 `protobuf:"bytes,4,opt,name=format,proto3" json:"format,omitempty"`                        // IMAGE | TXT
	Status               string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`                        // QUEUED | RUNNING | OCR_OK | EXTRACT_OK | FAILED
	StartedAt            string                 `protobuf:"bytes,6,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"` // RFC 3339
	FinishedAt           string                 `protobuf:"bytes,7,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	OcrConfidence        float32                `protobuf:"fixed32,8,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	ExtractionConfidence float32                `protobuf:"fixed32,9,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	NeedsReview          bool                   `protobuf:"varint,10,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ErrorMessage         string                 `protobuf:"bytes,11,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{2}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *Job) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *Job) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *Job) GetOcrConfidence() float32 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

func (x *Job) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *Job) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type GetJobRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Exactly one of job_id or file_id. With file_id the most recent job
	// for that file is returned.
	JobId         string `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	FileId        string `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetJobRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type Event struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	StartDate     string                 `protobuf:"bytes,3,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate       string                 `protobuf:"bytes,4,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	StartTime     string                 `protobuf:"bytes,5,opt,name=start_time,json=startTime,proto3" json:"start_time,omitempty"` // HH:MM, empty for all-day
	EndTime       string                 `protobuf:"bytes,6,opt,name=end_time,json=endTime,proto3" json:"end_time,omitempty"`
	AllDay        bool                   `protobuf:"varint,7,opt,name=all_day,json=allDay,proto3" json:"all_day,omitempty"`
	Location      string                 `protobuf:"bytes,8,opt,name=location,proto3" json:"location,omitempty"`
	Hosts         string                 `protobuf:"bytes,9,opt,name=hosts,proto3" json:"hosts,omitempty"`
	Description   string                 `protobuf:"bytes,10,opt,name=description,proto3" json:"description,omitempty"`
	Confidence    float32                `protobuf:"fixed32,11,opt,name=confidence,proto3" json:"confidence,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,12,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	GoogleEventId string                 `protobuf:"bytes,13,opt,name=google_event_id,json=googleEventId,proto3" json:"google_event_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,15,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Event) Reset() {
	*x = Event{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Event) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Event) ProtoMessage() {}

func (x *Event) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Event.ProtoReflect.Descriptor instead.
func (*Event) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{5}
}

func (x *Event) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Event) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Event) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *Event) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *Event) GetStartTime() string {
	if x != nil {
		return x.StartTime
	}
	return ""
}

func (x *Event) GetEndTime() string {
	if x != nil {
		return x.EndTime
	}
	return ""
}

func (x *Event) GetAllDay() bool {
	if x != nil {
		return x.AllDay
	}
	return false
}

func (x *Event) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *Event) GetHosts() string {
	if x != nil {
		return x.Hosts
	}
	return ""
}

func (x *Event) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Event) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Event) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Event) GetGoogleEventId() string {
	if x != nil {
		return x.GoogleEventId
	}
	return ""
}

func (x *Event) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Event) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetEventRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EventId       string                 `protobuf:"bytes,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEventRequest) Reset() {
	*x = GetEventRequest{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEventRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEventRequest) ProtoMessage() {}

func (x *GetEventRequest) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEventRequest.ProtoReflect.Descriptor instead.
func (*GetEventRequest) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{6}
}

func (x *GetEventRequest) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

type GetEventResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Event         *Event                 `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEventResponse) Reset() {
	*x = GetEventResponse{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEventResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEventResponse) ProtoMessage() {}

func (x *GetEventResponse) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEventResponse.ProtoReflect.Descriptor instead.
func (*GetEventResponse) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{7}
}

func (x *GetEventResponse) GetEvent() *Event {
	if x != nil {
		return x.Event
	}
	return nil
}

type ListEventsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`                 // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`                       // YYYY-MM-DD, optional
	NeedsReview   *bool                  `protobuf:"varint,3,opt,name=needs_review,json=needsReview,proto3,oneof" json:"needs_review,omitempty"` // unset means both
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEventsRequest) Reset() {
	*x = ListEventsRequest{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEventsRequest) ProtoMessage() {}

func (x *ListEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEventsRequest.ProtoReflect.Descriptor instead.
func (*ListEventsRequest) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{8}
}

func (x *ListEventsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListEventsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListEventsRequest) GetNeedsReview() bool {
	if x != nil && x.NeedsReview != nil {
		return *x.NeedsReview
	}
	return false
}

type ListEventsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Events        []*Event               `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEventsResponse) Reset() {
	*x = ListEventsResponse{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEventsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEventsResponse) ProtoMessage() {}

func (x *ListEventsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEventsResponse.ProtoReflect.Descriptor instead.
func (*ListEventsResponse) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{9}
}

func (x *ListEventsResponse) GetEvents() []*Event {
	if x != nil {
		return x.Events
	}
	return nil
}

type UpdateEventRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	EventId string                 `protobuf:"bytes,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	// Unset fields are left untouched; empty strings clear optional fields.
	Title         *string `protobuf:"bytes,2,opt,name=title,proto3,oneof" json:"title,omitempty"`
	StartDate     *string `protobuf:"bytes,3,opt,name=start_date,json=startDate,proto3,oneof" json:"start_date,omitempty"`
	EndDate       *string `protobuf:"bytes,4,opt,name=end_date,json=endDate,proto3,oneof" json:"end_date,omitempty"`
	StartTime     *string `protobuf:"bytes,5,opt,name=start_time,json=startTime,proto3,oneof" json:"start_time,omitempty"`
	EndTime       *string `protobuf:"bytes,6,opt,name=end_time,json=endTime,proto3,oneof" json:"end_time,omitempty"`
	AllDay        *bool   `protobuf:"varint,7,opt,name=all_day,json=allDay,proto3,oneof" json:"all_day,omitempty"`
	Location      *string `protobuf:"bytes,8,opt,name=location,proto3,oneof" json:"location,omitempty"`
	Hosts         *string `protobuf:"bytes,9,opt,name=hosts,proto3,oneof" json:"hosts,omitempty"`
	Description   *string `protobuf:"bytes,10,opt,name=description,proto3,oneof" json:"description,omitempty"`
	NeedsReview   *bool   `protobuf:"varint,11,opt,name=needs_review,json=needsReview,proto3,oneof" json:"needs_review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateEventRequest) Reset() {
	*x = UpdateEventRequest{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateEventRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateEventRequest) ProtoMessage() {}

func (x *UpdateEventRequest) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateEventRequest.ProtoReflect.Descriptor instead.
func (*UpdateEventRequest) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateEventRequest) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *UpdateEventRequest) GetTitle() string {
	if x != nil && x.Title != nil {
		return *x.Title
	}
	return ""
}

func (x *UpdateEventRequest) GetStartDate() string {
	if x != nil && x.StartDate != nil {
		return *x.StartDate
	}
	return ""
}

func (x *UpdateEventRequest) GetEndDate() string {
	if x != nil && x.EndDate != nil {
		return *x.EndDate
	}
	return ""
}

func (x *UpdateEventRequest) GetStartTime() string {
	if x != nil && x.StartTime != nil {
		return *x.StartTime
	}
	return ""
}

func (x *UpdateEventRequest) GetEndTime() string {
	if x != nil && x.EndTime != nil {
		return *x.EndTime
	}
	return ""
}

func (x *UpdateEventRequest) GetAllDay() bool {
	if x != nil && x.AllDay != nil {
		return *x.AllDay
	}
	return false
}

func (x *UpdateEventRequest) GetLocation() string {
	if x != nil && x.Location != nil {
		return *x.Location
	}
	return ""
}

func (x *UpdateEventRequest) GetHosts() string {
	if x != nil && x.Hosts != nil {
		return *x.Hosts
	}
	return ""
}

func (x *UpdateEventRequest) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *UpdateEventRequest) GetNeedsReview() bool {
	if x != nil && x.NeedsReview != nil {
		return *x.NeedsReview
	}
	return false
}

type UpdateEventResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Event         *Event                 `protobuf:"bytes,1,opt,name=event,proto3" json:"event,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateEventResponse) Reset() {
	*x = UpdateEventResponse{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateEventResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateEventResponse) ProtoMessage() {}

func (x *UpdateEventResponse) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateEventResponse.ProtoReflect.Descriptor instead.
func (*UpdateEventResponse) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateEventResponse) GetEvent() *Event {
	if x != nil {
		return x.Event
	}
	return nil
}

type DeleteEventRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EventId       string                 `protobuf:"bytes,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEventRequest) Reset() {
	*x = DeleteEventRequest{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEventRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEventRequest) ProtoMessage() {}

func (x *DeleteEventRequest) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEventRequest.ProtoReflect.Descriptor instead.
func (*DeleteEventRequest) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteEventRequest) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

type DeleteEventResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEventResponse) Reset() {
	*x = DeleteEventResponse{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEventResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEventResponse) ProtoMessage() {}

func (x *DeleteEventResponse) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEventResponse.ProtoReflect.Descriptor instead.
func (*DeleteEventResponse) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{13}
}

type SubmitToCalendarRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EventId       string                 `protobuf:"bytes,1,opt,name=event_id,json=eventId,proto3" json:"event_id,omitempty"`
	CalendarId    string                 `protobuf:"bytes,2,opt,name=calendar_id,json=calendarId,proto3" json:"calendar_id,omitempty"` // defaults to the configured calendar
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitToCalendarRequest) Reset() {
	*x = SubmitToCalendarRequest{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitToCalendarRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitToCalendarRequest) ProtoMessage() {}

func (x *SubmitToCalendarRequest) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitToCalendarRequest.ProtoReflect.Descriptor instead.
func (*SubmitToCalendarRequest) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{14}
}

func (x *SubmitToCalendarRequest) GetEventId() string {
	if x != nil {
		return x.EventId
	}
	return ""
}

func (x *SubmitToCalendarRequest) GetCalendarId() string {
	if x != nil {
		return x.CalendarId
	}
	return ""
}

type SubmitToCalendarResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GoogleEventId string                 `protobuf:"bytes,1,opt,name=google_event_id,json=googleEventId,proto3" json:"google_event_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitToCalendarResponse) Reset() {
	*x = SubmitToCalendarResponse{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitToCalendarResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitToCalendarResponse) ProtoMessage() {}

func (x *SubmitToCalendarResponse) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitToCalendarResponse.ProtoReflect.Descriptor instead.
func (*SubmitToCalendarResponse) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{15}
}

func (x *SubmitToCalendarResponse) GetGoogleEventId() string {
	if x != nil {
		return x.GoogleEventId
	}
	return ""
}

type ExportEventsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportEventsRequest) Reset() {
	*x = ExportEventsRequest{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportEventsRequest) ProtoMessage() {}

func (x *ExportEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportEventsRequest.ProtoReflect.Descriptor instead.
func (*ExportEventsRequest) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{16}
}

func (x *ExportEventsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportEventsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportEventsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportEventsResponse) Reset() {
	*x = ExportEventsResponse{}
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportEventsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportEventsResponse) ProtoMessage() {}

func (x *ExportEventsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_flyercal_v1_flyercal_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportEventsResponse.ProtoReflect.Descriptor instead.
func (*ExportEventsResponse) Descriptor() ([]byte, []int) {
	return file_flyercal_v1_flyercal_proto_rawDescGZIP(), []int{17}
}

func (x *ExportEventsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_flyercal_v1_flyercal_proto protoreflect.FileDescriptor

const file_flyercal_v1_flyercal_proto_rawDesc = "" +
	"\n" +
	"\x1aflyercal/v1/flyercal.proto\x12\vflyercal.v1\"`\n" +
	"\x12UploadFlyerRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x14\n" +
	"\x05force\x18\x03 \x01(\bR\x05force\"\xb8\x01\n" +
	"\x13UploadFlyerResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\"\xdd\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x19\n" +
	"\bevent_id\x18\x03 \x01(\tR\aeventId\x12\x16\n" +
	"\x06format\x18\x04 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"started_at\x18\x06 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\a \x01(\tR\n" +
	"finishedAt\x12%\n" +
	"\x0eocr_confidence\x18\b \x01(\x02R\rocrConfidence\x123\n" +
	"\x15extraction_confidence\x18\t \x01(\x02R\x14extractionConfidence\x12!\n" +
	"\fneeds_review\x18\n" +
	" \x01(\bR\vneedsReview\x12#\n" +
	"\rerror_message\x18\v \x01(\tR\ferrorMessage\"?\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\"4\n" +
	"\x0eGetJobResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.flyercal.v1.JobR\x03job\"\xb7\x03\n" +
	"\x05Event\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1d\n" +
	"\n" +
	"start_date\x18\x03 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x04 \x01(\tR\aendDate\x12\x1d\n" +
	"\n" +
	"start_time\x18\x05 \x01(\tR\tstartTime\x12\x19\n" +
	"\bend_time\x18\x06 \x01(\tR\aendTime\x12\x17\n" +
	"\aall_day\x18\a \x01(\bR\x06allDay\x12\x1a\n" +
	"\blocation\x18\b \x01(\tR\blocation\x12\x14\n" +
	"\x05hosts\x18\t \x01(\tR\x05hosts\x12 \n" +
	"\vdescription\x18\n" +
	" \x01(\tR\vdescription\x12\x1e\n" +
	"\n" +
	"confidence\x18\v \x01(\x02R\n" +
	"confidence\x12!\n" +
	"\fneeds_review\x18\f \x01(\bR\vneedsReview\x12&\n" +
	"\x0fgoogle_event_id\x18\r \x01(\tR\rgoogleEventId\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0f \x01(\tR\tupdatedAt\",\n" +
	"\x0fGetEventRequest\x12\x19\n" +
	"\bevent_id\x18\x01 \x01(\tR\aeventId\"<\n" +
	"\x10GetEventResponse\x12(\n" +
	"\x05event\x18\x01 \x01(\v2\x12.flyercal.v1.EventR\x05event\"\x82\x01\n" +
	"\x11ListEventsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12&\n" +
	"\fneeds_review\x18\x03 \x01(\bH\x00R\vneedsReview\x88\x01\x01B\x0f\n" +
	"\r_needs_review\"@\n" +
	"\x12ListEventsResponse\x12*\n" +
	"\x06events\x18\x01 \x03(\v2\x12.flyercal.v1.EventR\x06events\"\x81\x04\n" +
	"\x12UpdateEventRequest\x12\x19\n" +
	"\bevent_id\x18\x01 \x01(\tR\aeventId\x12\x19\n" +
	"\x05title\x18\x02 \x01(\tH\x00R\x05title\x88\x01\x01\x12\"\n" +
	"\n" +
	"start_date\x18\x03 \x01(\tH\x01R\tstartDate\x88\x01\x01\x12\x1e\n" +
	"\bend_date\x18\x04 \x01(\tH\x02R\aendDate\x88\x01\x01\x12\"\n" +
	"\n" +
	"start_time\x18\x05 \x01(\tH\x03R\tstartTime\x88\x01\x01\x12\x1e\n" +
	"\bend_time\x18\x06 \x01(\tH\x04R\aendTime\x88\x01\x01\x12\x1c\n" +
	"\aall_day\x18\a \x01(\bH\x05R\x06allDay\x88\x01\x01\x12\x1f\n" +
	"\blocation\x18\b \x01(\tH\x06R\blocation\x88\x01\x01\x12\x19\n" +
	"\x05hosts\x18\t \x01(\tH\aR\x05hosts\x88\x01\x01\x12%\n" +
	"\vdescription\x18\n" +
	" \x01(\tH\bR\vdescription\x88\x01\x01\x12&\n" +
	"\fneeds_review\x18\v \x01(\bH\tR\vneedsReview\x88\x01\x01B\b\n" +
	"\x06_titleB\r\n" +
	"\v_start_dateB\v\n" +
	"\t_end_dateB\r\n" +
	"\v_start_timeB\v\n" +
	"\t_end_timeB\n" +
	"\n" +
	"\b_all_dayB\v\n" +
	"\t_locationB\b\n" +
	"\x06_hostsB\x0e\n" +
	"\f_descriptionB\x0f\n" +
	"\r_needs_review\"?\n" +
	"\x13UpdateEventResponse\x12(\n" +
	"\x05event\x18\x01 \x01(\v2\x12.flyercal.v1.EventR\x05event\"/\n" +
	"\x12DeleteEventRequest\x12\x19\n" +
	"\bevent_id\x18\x01 \x01(\tR\aeventId\"\x15\n" +
	"\x13DeleteEventResponse\"U\n" +
	"\x17SubmitToCalendarRequest\x12\x19\n" +
	"\bevent_id\x18\x01 \x01(\tR\aeventId\x12\x1f\n" +
	"\vcalendar_id\x18\x02 \x01(\tR\n" +
	"calendarId\"B\n" +
	"\x18SubmitToCalendarResponse\x12&\n" +
	"\x0fgoogle_event_id\x18\x01 \x01(\tR\rgoogleEventId\"K\n" +
	"\x13ExportEventsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"*\n" +
	"\x14ExportEventsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x98\x05\n" +
	"\x0fFlyercalService\x12P\n" +
	"\vUploadFlyer\x12\x1f.flyercal.v1.UploadFlyerRequest\x1a .flyercal.v1.UploadFlyerResponse\x12A\n" +
	"\x06GetJob\x12\x1a.flyercal.v1.GetJobRequest\x1a\x1b.flyercal.v1.GetJobResponse\x12G\n" +
	"\bGetEvent\x12\x1c.flyercal.v1.GetEventRequest\x1a\x1d.flyercal.v1.GetEventResponse\x12M\n" +
	"\n" +
	"ListEvents\x12\x1e.flyercal.v1.ListEventsRequest\x1a\x1f.flyercal.v1.ListEventsResponse\x12P\n" +
	"\vUpdateEvent\x12\x1f.flyercal.v1.UpdateEventRequest\x1a .flyercal.v1.UpdateEventResponse\x12P\n" +
	"\vDeleteEvent\x12\x1f.flyercal.v1.DeleteEventRequest\x1a .flyercal.v1.DeleteEventResponse\x12_\n" +
	"\x10SubmitToCalendar\x12$.flyercal.v1.SubmitToCalendarRequest\x1a%.flyercal.v1.SubmitToCalendarResponse\x12S\n" +
	"\fExportEvents\x12 .flyercal.v1.ExportEventsRequest\x1a!.flyercal.v1.ExportEventsResponseB;Z9github.com/flyercal-app/flyercal/gen/proto/flyercal/v1;v1b\x06proto3"

var (
	file_flyercal_v1_flyercal_proto_rawDescOnce sync.Once
	file_flyercal_v1_flyercal_proto_rawDescData []byte
)

func file_flyercal_v1_flyercal_proto_rawDescGZIP() []byte {
	file_flyercal_v1_flyercal_proto_rawDescOnce.Do(func() {
		file_flyercal_v1_flyercal_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_flyercal_v1_flyercal_proto_rawDesc), len(file_flyercal_v1_flyercal_proto_rawDesc)))
	})
	return file_flyercal_v1_flyercal_proto_rawDescData
}

var file_flyercal_v1_flyercal_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_flyercal_v1_flyercal_proto_goTypes = []any{
	(*UploadFlyerRequest)(nil),       // 0: flyercal.v1.UploadFlyerRequest
	(*UploadFlyerResponse)(nil),      // 1: flyercal.v1.UploadFlyerResponse
	(*Job)(nil),                      // 2: flyercal.v1.Job
	(*GetJobRequest)(nil),            // 3: flyercal.v1.GetJobRequest
	(*GetJobResponse)(nil),           // 4: flyercal.v1.GetJobResponse
	(*Event)(nil),                    // 5: flyercal.v1.Event
	(*GetEventRequest)(nil),          // 6: flyercal.v1.GetEventRequest
	(*GetEventResponse)(nil),         // 7: flyercal.v1.GetEventResponse
	(*ListEventsRequest)(nil),        // 8: flyercal.v1.ListEventsRequest
	(*ListEventsResponse)(nil),       // 9: flyercal.v1.ListEventsResponse
	(*UpdateEventRequest)(nil),       // 10: flyercal.v1.UpdateEventRequest
	(*UpdateEventResponse)(nil),      // 11: flyercal.v1.UpdateEventResponse
	(*DeleteEventRequest)(nil),       // 12: flyercal.v1.DeleteEventRequest
	(*DeleteEventResponse)(nil),      // 13: flyercal.v1.DeleteEventResponse
	(*SubmitToCalendarRequest)(nil),  // 14: flyercal.v1.SubmitToCalendarRequest
	(*SubmitToCalendarResponse)(nil), // 15: flyercal.v1.SubmitToCalendarResponse
	(*ExportEventsRequest)(nil),      // 16: flyercal.v1.ExportEventsRequest
	(*ExportEventsResponse)(nil),     // 17: flyercal.v1.ExportEventsResponse
}
var file_flyercal_v1_flyercal_proto_depIdxs = []int32{
	2,  // 0: flyercal.v1.GetJobResponse.job:type_name -> flyercal.v1.Job
	5,  // 1: flyercal.v1.GetEventResponse.event:type_name -> flyercal.v1.Event
	5,  // 2: flyercal.v1.ListEventsResponse.events:type_name -> flyercal.v1.Event
	5,  // 3: flyercal.v1.UpdateEventResponse.event:type_name -> flyercal.v1.Event
	0,  // 4: flyercal.v1.FlyercalService.UploadFlyer:input_type -> flyercal.v1.UploadFlyerRequest
	3,  // 5: flyercal.v1.FlyercalService.GetJob:input_type -> flyercal.v1.GetJobRequest
	6,  // 6: flyercal.v1.FlyercalService.GetEvent:input_type -> flyercal.v1.GetEventRequest
	8,  // 7: flyercal.v1.FlyercalService.ListEvents:input_type -> flyercal.v1.ListEventsRequest
	10, // 8: flyercal.v1.FlyercalService.UpdateEvent:input_type -> flyercal.v1.UpdateEventRequest
	12, // 9: flyercal.v1.FlyercalService.DeleteEvent:input_type -> flyercal.v1.DeleteEventRequest
	14, // 10: flyercal.v1.FlyercalService.SubmitToCalendar:input_type -> flyercal.v1.SubmitToCalendarRequest
	16, // 11: flyercal.v1.FlyercalService.ExportEvents:input_type -> flyercal.v1.ExportEventsRequest
	1,  // 12: flyercal.v1.FlyercalService.UploadFlyer:output_type -> flyercal.v1.UploadFlyerResponse
	4,  // 13: flyercal.v1.FlyercalService.GetJob:output_type -> flyercal.v1.GetJobResponse
	7,  // 14: flyercal.v1.FlyercalService.GetEvent:output_type -> flyercal.v1.GetEventResponse
	9,  // 15: flyercal.v1.FlyercalService.ListEvents:output_type -> flyercal.v1.ListEventsResponse
	11, // 16: flyercal.v1.FlyercalService.UpdateEvent:output_type -> flyercal.v1.UpdateEventResponse
	13, // 17: flyercal.v1.FlyercalService.DeleteEvent:output_type -> flyercal.v1.DeleteEventResponse
	15, // 18: flyercal.v1.FlyercalService.SubmitToCalendar:output_type -> flyercal.v1.SubmitToCalendarResponse
	17, // 19: flyercal.v1.FlyercalService.ExportEvents:output_type -> flyercal.v1.ExportEventsResponse
	12, // [12:20] is the sub-list for method output_type
	4,  // [4:12] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_flyercal_v1_flyercal_proto_init() }
func file_flyercal_v1_flyercal_proto_init() {
	if File_flyercal_v1_flyercal_proto != nil {
		return
	}
	file_flyercal_v1_flyercal_proto_msgTypes[8].OneofWrappers = []any{}
	file_flyercal_v1_flyercal_proto_msgTypes[10].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_flyercal_v1_flyercal_proto_rawDesc), len(file_flyercal_v1_flyercal_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_flyercal_v1_flyercal_proto_goTypes,
		DependencyIndexes: file_flyercal_v1_flyercal_proto_depIdxs,
		MessageInfos:      file_flyercal_v1_flyercal_proto_msgTypes,
	}.Build()
	File_flyercal_v1_flyercal_proto = out.File
	file_flyercal_v1_flyercal_proto_goTypes = nil
	file_flyercal_v1_flyercal_proto_depIdxs = nil
}
