// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: flyercal/v1/flyercal.proto

package v1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	FlyercalService_UploadFlyer_FullMethodName      = "/flyercal.v1.FlyercalService/UploadFlyer"
	FlyercalService_GetJob_FullMethodName           = "/flyercal.v1.FlyercalService/GetJob"
	FlyercalService_GetEvent_FullMethodName         = "/flyercal.v1.FlyercalService/GetEvent"
	FlyercalService_ListEvents_FullMethodName       = "/flyercal.v1.FlyercalService/ListEvents"
	FlyercalService_UpdateEvent_FullMethodName      = "/flyercal.v1.FlyercalService/UpdateEvent"
	FlyercalService_DeleteEvent_FullMethodName      = "/flyercal.v1.FlyercalService/DeleteEvent"
	FlyercalService_SubmitToCalendar_FullMethodName = "/flyercal.v1.FlyercalService/SubmitToCalendar"
	FlyercalService_ExportEvents_FullMethodName     = "/flyercal.v1.FlyercalService/ExportEvents"
)

// FlyercalServiceClient is the client API for FlyercalService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type FlyercalServiceClient interface {
	// UploadFlyer stores the flyer bytes, deduplicates by content hash and
	// queues OCR + extraction.
	UploadFlyer(ctx context.Context, in *UploadFlyerRequest, opts ...grpc.CallOption) (*UploadFlyerResponse, error)
	// GetJob reports pipeline progress for an upload.
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	GetEvent(ctx context.Context, in *GetEventRequest, opts ...grpc.CallOption) (*GetEventResponse, error)
	ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error)
	UpdateEvent(ctx context.Context, in *UpdateEventRequest, opts ...grpc.CallOption) (*UpdateEventResponse, error)
	DeleteEvent(ctx context.Context, in *DeleteEventRequest, opts ...grpc.CallOption) (*DeleteEventResponse, error)
	// SubmitToCalendar pushes a stored event to Google Calendar.
	SubmitToCalendar(ctx context.Context, in *SubmitToCalendarRequest, opts ...grpc.CallOption) (*SubmitToCalendarResponse, error)
	// ExportEvents renders events in a date window as an XLSX workbook.
	ExportEvents(ctx context.Context, in *ExportEventsRequest, opts ...grpc.CallOption) (*ExportEventsResponse, error)
}

type flyercalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFlyercalServiceClient(cc grpc.ClientConnInterface) FlyercalServiceClient {
	return &flyercalServiceClient{cc}
}

func (c *flyercalServiceClient) UploadFlyer(ctx context.Context, in *UploadFlyerRequest, opts ...grpc.CallOption) (*UploadFlyerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadFlyerResponse)
	err := c.cc.Invoke(ctx, FlyercalService_UploadFlyer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flyercalServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, FlyercalService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flyercalServiceClient) GetEvent(ctx context.Context, in *GetEventRequest, opts ...grpc.CallOption) (*GetEventResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEventResponse)
	err := c.cc.Invoke(ctx, FlyercalService_GetEvent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flyercalServiceClient) ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEventsResponse)
	err := c.cc.Invoke(ctx, FlyercalService_ListEvents_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flyercalServiceClient) UpdateEvent(ctx context.Context, in *UpdateEventRequest, opts ...grpc.CallOption) (*UpdateEventResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateEventResponse)
	err := c.cc.Invoke(ctx, FlyercalService_UpdateEvent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flyercalServiceClient) DeleteEvent(ctx context.Context, in *DeleteEventRequest, opts ...grpc.CallOption) (*DeleteEventResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteEventResponse)
	err := c.cc.Invoke(ctx, FlyercalService_DeleteEvent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flyercalServiceClient) SubmitToCalendar(ctx context.Context, in *SubmitToCalendarRequest, opts ...grpc.CallOption) (*SubmitToCalendarResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitToCalendarResponse)
	err := c.cc.Invoke(ctx, FlyercalService_SubmitToCalendar_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flyercalServiceClient) ExportEvents(ctx context.Context, in *ExportEventsRequest, opts ...grpc.CallOption) (*ExportEventsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportEventsResponse)
	err := c.cc.Invoke(ctx, FlyercalService_ExportEvents_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FlyercalServiceServer is the server API for FlyercalService service.
// All implementations must embed UnimplementedFlyercalServiceServer
// for forward compatibility.
type FlyercalServiceServer interface {
	// UploadFlyer stores the flyer bytes, deduplicates by content hash and
	// queues OCR + extraction.
	UploadFlyer(context.Context, *UploadFlyerRequest) (*UploadFlyerResponse, error)
	// GetJob reports pipeline progress for an upload.
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	GetEvent(context.Context, *GetEventRequest) (*GetEventResponse, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
	UpdateEvent(context.Context, *UpdateEventRequest) (*UpdateEventResponse, error)
	DeleteEvent(context.Context, *DeleteEventRequest) (*DeleteEventResponse, error)
	// SubmitToCalendar pushes a stored event to Google Calendar.
	SubmitToCalendar(context.Context, *SubmitToCalendarRequest) (*SubmitToCalendarResponse, error)
	// ExportEvents renders events in a date window as an XLSX workbook.
	ExportEvents(context.Context, *ExportEventsRequest) (*ExportEventsResponse, error)
	mustEmbedUnimplementedFlyercalServiceServer()
}

// UnimplementedFlyercalServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFlyercalServiceServer struct{}

func (UnimplementedFlyercalServiceServer) UploadFlyer(context.Context, *UploadFlyerRequest) (*UploadFlyerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadFlyer not implemented")
}
func (UnimplementedFlyercalServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedFlyercalServiceServer) GetEvent(context.Context, *GetEventRequest) (*GetEventResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEvent not implemented")
}
func (UnimplementedFlyercalServiceServer) ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEvents not implemented")
}
func (UnimplementedFlyercalServiceServer) UpdateEvent(context.Context, *UpdateEventRequest) (*UpdateEventResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateEvent not implemented")
}
func (UnimplementedFlyercalServiceServer) DeleteEvent(context.Context, *DeleteEventRequest) (*DeleteEventResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteEvent not implemented")
}
func (UnimplementedFlyercalServiceServer) SubmitToCalendar(context.Context, *SubmitToCalendarRequest) (*SubmitToCalendarResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitToCalendar not implemented")
}
func (UnimplementedFlyercalServiceServer) ExportEvents(context.Context, *ExportEventsRequest) (*ExportEventsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportEvents not implemented")
}
func (UnimplementedFlyercalServiceServer) mustEmbedUnimplementedFlyercalServiceServer() {}
func (UnimplementedFlyercalServiceServer) testEmbeddedByValue()                         {}

// UnsafeFlyercalServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FlyercalServiceServer will
// result in compilation errors.
type UnsafeFlyercalServiceServer interface {
	mustEmbedUnimplementedFlyercalServiceServer()
}

func RegisterFlyercalServiceServer(s grpc.ServiceRegistrar, srv FlyercalServiceServer) {
	// If the following call pancis, it indicates UnimplementedFlyercalServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FlyercalService_ServiceDesc, srv)
}

func _FlyercalService_UploadFlyer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadFlyerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlyercalServiceServer).UploadFlyer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlyercalService_UploadFlyer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlyercalServiceServer).UploadFlyer(ctx, req.(*UploadFlyerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlyercalService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlyercalServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlyercalService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlyercalServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlyercalService_GetEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlyercalServiceServer).GetEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlyercalService_GetEvent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlyercalServiceServer).GetEvent(ctx, req.(*GetEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlyercalService_ListEvents_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEventsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlyercalServiceServer).ListEvents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlyercalService_ListEvents_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlyercalServiceServer).ListEvents(ctx, req.(*ListEventsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlyercalService_UpdateEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlyercalServiceServer).UpdateEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlyercalService_UpdateEvent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlyercalServiceServer).UpdateEvent(ctx, req.(*UpdateEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlyercalService_DeleteEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteEventRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlyercalServiceServer).DeleteEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlyercalService_DeleteEvent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlyercalServiceServer).DeleteEvent(ctx, req.(*DeleteEventRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlyercalService_SubmitToCalendar_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitToCalendarRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlyercalServiceServer).SubmitToCalendar(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlyercalService_SubmitToCalendar_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlyercalServiceServer).SubmitToCalendar(ctx, req.(*SubmitToCalendarRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlyercalService_ExportEvents_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportEventsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlyercalServiceServer).ExportEvents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlyercalService_ExportEvents_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlyercalServiceServer).ExportEvents(ctx, req.(*ExportEventsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FlyercalService_ServiceDesc is the grpc.ServiceDesc for FlyercalService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FlyercalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "flyercal.v1.FlyercalService",
	HandlerType: (*FlyercalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadFlyer",
			Handler:    _FlyercalService_UploadFlyer_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _FlyercalService_GetJob_Handler,
		},
		{
			MethodName: "GetEvent",
			Handler:    _FlyercalService_GetEvent_Handler,
		},
		{
			MethodName: "ListEvents",
			Handler:    _FlyercalService_ListEvents_Handler,
		},
		{
			MethodName: "UpdateEvent",
			Handler:    _FlyercalService_UpdateEvent_Handler,
		},
		{
			MethodName: "DeleteEvent",
			Handler:    _FlyercalService_DeleteEvent_Handler,
		},
		{
			MethodName: "SubmitToCalendar",
			Handler:    _FlyercalService_SubmitToCalendar_Handler,
		},
		{
			MethodName: "ExportEvents",
			Handler:    _FlyercalService_ExportEvents_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "flyercal/v1/flyercal.proto",
}
