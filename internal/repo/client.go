// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/medora-health/medora_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/medora-health/medora_backend/internal/repo/appointment"
	"github.com/medora-health/medora_backend/internal/repo/billing"
	"github.com/medora-health/medora_backend/internal/repo/department"
	"github.com/medora-health/medora_backend/internal/repo/doctor"
	"github.com/medora-health/medora_backend/internal/repo/doctoravailability"
	"github.com/medora-health/medora_backend/internal/repo/medicalrecord"
	"github.com/medora-health/medora_backend/internal/repo/medication"
	"github.com/medora-health/medora_backend/internal/repo/message"
	"github.com/medora-health/medora_backend/internal/repo/patient"
	"github.com/medora-health/medora_backend/internal/repo/prescription"
	"github.com/medora-health/medora_backend/internal/repo/timeslot"
	"github.com/medora-health/medora_backend/internal/repo/treatmentplan"
	"github.com/medora-health/medora_backend/internal/repo/vaccination"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// Billing is the client for interacting with the Billing builders.
	Billing *BillingClient
	// Department is the client for interacting with the Department builders.
	Department *DepartmentClient
	// Doctor is the client for interacting with the Doctor builders.
	Doctor *DoctorClient
	// DoctorAvailability is the client for interacting with the DoctorAvailability builders.
	DoctorAvailability *DoctorAvailabilityClient
	// MedicalRecord is the client for interacting with the MedicalRecord builders.
	MedicalRecord *MedicalRecordClient
	// Medication is the client for interacting with the Medication builders.
	Medication *MedicationClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// Prescription is the client for interacting with the Prescription builders.
	Prescription *PrescriptionClient
	// TimeSlot is the client for interacting with the TimeSlot builders.
	TimeSlot *TimeSlotClient
	// TreatmentPlan is the client for interacting with the TreatmentPlan builders.
	TreatmentPlan *TreatmentPlanClient
	// Vaccination is the client for interacting with the Vaccination builders.
	Vaccination *VaccinationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Appointment = NewAppointmentClient(c.config)
	c.Billing = NewBillingClient(c.config)
	c.Department = NewDepartmentClient(c.config)
	c.Doctor = NewDoctorClient(c.config)
	c.DoctorAvailability = NewDoctorAvailabilityClient(c.config)
	c.MedicalRecord = NewMedicalRecordClient(c.config)
	c.Medication = NewMedicationClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.Prescription = NewPrescriptionClient(c.config)
	c.TimeSlot = NewTimeSlotClient(c.config)
	c.TreatmentPlan = NewTreatmentPlanClient(c.config)
	c.Vaccination = NewVaccinationClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Appointment:        NewAppointmentClient(cfg),
		Billing:            NewBillingClient(cfg),
		Department:         NewDepartmentClient(cfg),
		Doctor:             NewDoctorClient(cfg),
		DoctorAvailability: NewDoctorAvailabilityClient(cfg),
		MedicalRecord:      NewMedicalRecordClient(cfg),
		Medication:         NewMedicationClient(cfg),
		Message:            NewMessageClient(cfg),
		Patient:            NewPatientClient(cfg),
		Prescription:       NewPrescriptionClient(cfg),
		TimeSlot:           NewTimeSlotClient(cfg),
		TreatmentPlan:      NewTreatmentPlanClient(cfg),
		Vaccination:        NewVaccinationClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Appointment:        NewAppointmentClient(cfg),
		Billing:            NewBillingClient(cfg),
		Department:         NewDepartmentClient(cfg),
		Doctor:             NewDoctorClient(cfg),
		DoctorAvailability: NewDoctorAvailabilityClient(cfg),
		MedicalRecord:      NewMedicalRecordClient(cfg),
		Medication:         NewMedicationClient(cfg),
		Message:            NewMessageClient(cfg),
		Patient:            NewPatientClient(cfg),
		Prescription:       NewPrescriptionClient(cfg),
		TimeSlot:           NewTimeSlotClient(cfg),
		TreatmentPlan:      NewTreatmentPlanClient(cfg),
		Vaccination:        NewVaccinationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Appointment.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Appointment, c.Billing, c.Department, c.Doctor, c.DoctorAvailability,
		c.MedicalRecord, c.Medication, c.Message, c.Patient, c.Prescription,
		c.TimeSlot, c.TreatmentPlan, c.Vaccination,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.Billing, c.Department, c.Doctor, c.DoctorAvailability,
		c.MedicalRecord, c.Medication, c.Message, c.Patient, c.Prescription,
		c.TimeSlot, c.TreatmentPlan, c.Vaccination,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *BillingMutation:
		return c.Billing.mutate(ctx, m)
	case *DepartmentMutation:
		return c.Department.mutate(ctx, m)
	case *DoctorMutation:
		return c.Doctor.mutate(ctx, m)
	case *DoctorAvailabilityMutation:
		return c.DoctorAvailability.mutate(ctx, m)
	case *MedicalRecordMutation:
		return c.MedicalRecord.mutate(ctx, m)
	case *MedicationMutation:
		return c.Medication.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PrescriptionMutation:
		return c.Prescription.mutate(ctx, m)
	case *TimeSlotMutation:
		return c.TimeSlot.mutate(ctx, m)
	case *TreatmentPlanMutation:
		return c.TreatmentPlan.mutate(ctx, m)
	case *VaccinationMutation:
		return c.Vaccination.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id uuid.UUID) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id uuid.UUID) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id uuid.UUID) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Appointment mutation op: %q", m.Op())
	}
}

// BillingClient is a client for the Billing schema.
type BillingClient struct {
	config
}

// NewBillingClient returns a client for the Billing from the given config.
func NewBillingClient(c config) *BillingClient {
	return &BillingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `billing.Hooks(f(g(h())))`.
func (c *BillingClient) Use(hooks ...Hook) {
	c.hooks.Billing = append(c.hooks.Billing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `billing.Intercept(f(g(h())))`.
func (c *BillingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Billing = append(c.inters.Billing, interceptors...)
}

// Create returns a builder for creating a Billing entity.
func (c *BillingClient) Create() *BillingCreate {
	mutation := newBillingMutation(c.config, OpCreate)
	return &BillingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Billing entities.
func (c *BillingClient) CreateBulk(builders ...*BillingCreate) *BillingCreateBulk {
	return &BillingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BillingClient) MapCreateBulk(slice any, setFunc func(*BillingCreate, int)) *BillingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BillingCreateBulk{err: fmt.Errorf("calling to BillingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BillingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BillingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Billing.
func (c *BillingClient) Update() *BillingUpdate {
	mutation := newBillingMutation(c.config, OpUpdate)
	return &BillingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BillingClient) UpdateOne(_m *Billing) *BillingUpdateOne {
	mutation := newBillingMutation(c.config, OpUpdateOne, withBilling(_m))
	return &BillingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BillingClient) UpdateOneID(id uuid.UUID) *BillingUpdateOne {
	mutation := newBillingMutation(c.config, OpUpdateOne, withBillingID(id))
	return &BillingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Billing.
func (c *BillingClient) Delete() *BillingDelete {
	mutation := newBillingMutation(c.config, OpDelete)
	return &BillingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BillingClient) DeleteOne(_m *Billing) *BillingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BillingClient) DeleteOneID(id uuid.UUID) *BillingDeleteOne {
	builder := c.Delete().Where(billing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BillingDeleteOne{builder}
}

// Query returns a query builder for Billing.
func (c *BillingClient) Query() *BillingQuery {
	return &BillingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBilling},
		inters: c.Interceptors(),
	}
}

// Get returns a Billing entity by its id.
func (c *BillingClient) Get(ctx context.Context, id uuid.UUID) (*Billing, error) {
	return c.Query().Where(billing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BillingClient) GetX(ctx context.Context, id uuid.UUID) *Billing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BillingClient) Hooks() []Hook {
	return c.hooks.Billing
}

// Interceptors returns the client interceptors.
func (c *BillingClient) Interceptors() []Interceptor {
	return c.inters.Billing
}

func (c *BillingClient) mutate(ctx context.Context, m *BillingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BillingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BillingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BillingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BillingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Billing mutation op: %q", m.Op())
	}
}

// DepartmentClient is a client for the Department schema.
type DepartmentClient struct {
	config
}

// NewDepartmentClient returns a client for the Department from the given config.
func NewDepartmentClient(c config) *DepartmentClient {
	return &DepartmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `department.Hooks(f(g(h())))`.
func (c *DepartmentClient) Use(hooks ...Hook) {
	c.hooks.Department = append(c.hooks.Department, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `department.Intercept(f(g(h())))`.
func (c *DepartmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Department = append(c.inters.Department, interceptors...)
}

// Create returns a builder for creating a Department entity.
func (c *DepartmentClient) Create() *DepartmentCreate {
	mutation := newDepartmentMutation(c.config, OpCreate)
	return &DepartmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Department entities.
func (c *DepartmentClient) CreateBulk(builders ...*DepartmentCreate) *DepartmentCreateBulk {
	return &DepartmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DepartmentClient) MapCreateBulk(slice any, setFunc func(*DepartmentCreate, int)) *DepartmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DepartmentCreateBulk{err: fmt.Errorf("calling to DepartmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DepartmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DepartmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Department.
func (c *DepartmentClient) Update() *DepartmentUpdate {
	mutation := newDepartmentMutation(c.config, OpUpdate)
	return &DepartmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DepartmentClient) UpdateOne(_m *Department) *DepartmentUpdateOne {
	mutation := newDepartmentMutation(c.config, OpUpdateOne, withDepartment(_m))
	return &DepartmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DepartmentClient) UpdateOneID(id uuid.UUID) *DepartmentUpdateOne {
	mutation := newDepartmentMutation(c.config, OpUpdateOne, withDepartmentID(id))
	return &DepartmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Department.
func (c *DepartmentClient) Delete() *DepartmentDelete {
	mutation := newDepartmentMutation(c.config, OpDelete)
	return &DepartmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DepartmentClient) DeleteOne(_m *Department) *DepartmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DepartmentClient) DeleteOneID(id uuid.UUID) *DepartmentDeleteOne {
	builder := c.Delete().Where(department.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DepartmentDeleteOne{builder}
}

// Query returns a query builder for Department.
func (c *DepartmentClient) Query() *DepartmentQuery {
	return &DepartmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDepartment},
		inters: c.Interceptors(),
	}
}

// Get returns a Department entity by its id.
func (c *DepartmentClient) Get(ctx context.Context, id uuid.UUID) (*Department, error) {
	return c.Query().Where(department.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DepartmentClient) GetX(ctx context.Context, id uuid.UUID) *Department {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDoctors queries the doctors edge of a Department.
func (c *DepartmentClient) QueryDoctors(_m *Department) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(department.Table, department.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, department.DoctorsTable, department.DoctorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DepartmentClient) Hooks() []Hook {
	return c.hooks.Department
}

// Interceptors returns the client interceptors.
func (c *DepartmentClient) Interceptors() []Interceptor {
	return c.inters.Department
}

func (c *DepartmentClient) mutate(ctx context.Context, m *DepartmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DepartmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DepartmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DepartmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DepartmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Department mutation op: %q", m.Op())
	}
}

// DoctorClient is a client for the Doctor schema.
type DoctorClient struct {
	config
}

// NewDoctorClient returns a client for the Doctor from the given config.
func NewDoctorClient(c config) *DoctorClient {
	return &DoctorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctor.Hooks(f(g(h())))`.
func (c *DoctorClient) Use(hooks ...Hook) {
	c.hooks.Doctor = append(c.hooks.Doctor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctor.Intercept(f(g(h())))`.
func (c *DoctorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Doctor = append(c.inters.Doctor, interceptors...)
}

// Create returns a builder for creating a Doctor entity.
func (c *DoctorClient) Create() *DoctorCreate {
	mutation := newDoctorMutation(c.config, OpCreate)
	return &DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Doctor entities.
func (c *DoctorClient) CreateBulk(builders ...*DoctorCreate) *DoctorCreateBulk {
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorClient) MapCreateBulk(slice any, setFunc func(*DoctorCreate, int)) *DoctorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorCreateBulk{err: fmt.Errorf("calling to DoctorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Doctor.
func (c *DoctorClient) Update() *DoctorUpdate {
	mutation := newDoctorMutation(c.config, OpUpdate)
	return &DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorClient) UpdateOne(_m *Doctor) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctor(_m))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorClient) UpdateOneID(id uuid.UUID) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctorID(id))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Doctor.
func (c *DoctorClient) Delete() *DoctorDelete {
	mutation := newDoctorMutation(c.config, OpDelete)
	return &DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorClient) DeleteOne(_m *Doctor) *DoctorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorClient) DeleteOneID(id uuid.UUID) *DoctorDeleteOne {
	builder := c.Delete().Where(doctor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorDeleteOne{builder}
}

// Query returns a query builder for Doctor.
func (c *DoctorClient) Query() *DoctorQuery {
	return &DoctorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctor},
		inters: c.Interceptors(),
	}
}

// Get returns a Doctor entity by its id.
func (c *DoctorClient) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return c.Query().Where(doctor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorClient) GetX(ctx context.Context, id uuid.UUID) *Doctor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDepartment queries the department edge of a Doctor.
func (c *DoctorClient) QueryDepartment(_m *Doctor) *DepartmentQuery {
	query := (&DepartmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(department.Table, department.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, doctor.DepartmentTable, doctor.DepartmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DoctorClient) Hooks() []Hook {
	return c.hooks.Doctor
}

// Interceptors returns the client interceptors.
func (c *DoctorClient) Interceptors() []Interceptor {
	return c.inters.Doctor
}

func (c *DoctorClient) mutate(ctx context.Context, m *DoctorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Doctor mutation op: %q", m.Op())
	}
}

// DoctorAvailabilityClient is a client for the DoctorAvailability schema.
type DoctorAvailabilityClient struct {
	config
}

// NewDoctorAvailabilityClient returns a client for the DoctorAvailability from the given config.
func NewDoctorAvailabilityClient(c config) *DoctorAvailabilityClient {
	return &DoctorAvailabilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctoravailability.Hooks(f(g(h())))`.
func (c *DoctorAvailabilityClient) Use(hooks ...Hook) {
	c.hooks.DoctorAvailability = append(c.hooks.DoctorAvailability, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctoravailability.Intercept(f(g(h())))`.
func (c *DoctorAvailabilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.DoctorAvailability = append(c.inters.DoctorAvailability, interceptors...)
}

// Create returns a builder for creating a DoctorAvailability entity.
func (c *DoctorAvailabilityClient) Create() *DoctorAvailabilityCreate {
	mutation := newDoctorAvailabilityMutation(c.config, OpCreate)
	return &DoctorAvailabilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DoctorAvailability entities.
func (c *DoctorAvailabilityClient) CreateBulk(builders ...*DoctorAvailabilityCreate) *DoctorAvailabilityCreateBulk {
	return &DoctorAvailabilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorAvailabilityClient) MapCreateBulk(slice any, setFunc func(*DoctorAvailabilityCreate, int)) *DoctorAvailabilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorAvailabilityCreateBulk{err: fmt.Errorf("calling to DoctorAvailabilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorAvailabilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorAvailabilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DoctorAvailability.
func (c *DoctorAvailabilityClient) Update() *DoctorAvailabilityUpdate {
	mutation := newDoctorAvailabilityMutation(c.config, OpUpdate)
	return &DoctorAvailabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorAvailabilityClient) UpdateOne(_m *DoctorAvailability) *DoctorAvailabilityUpdateOne {
	mutation := newDoctorAvailabilityMutation(c.config, OpUpdateOne, withDoctorAvailability(_m))
	return &DoctorAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorAvailabilityClient) UpdateOneID(id uuid.UUID) *DoctorAvailabilityUpdateOne {
	mutation := newDoctorAvailabilityMutation(c.config, OpUpdateOne, withDoctorAvailabilityID(id))
	return &DoctorAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DoctorAvailability.
func (c *DoctorAvailabilityClient) Delete() *DoctorAvailabilityDelete {
	mutation := newDoctorAvailabilityMutation(c.config, OpDelete)
	return &DoctorAvailabilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorAvailabilityClient) DeleteOne(_m *DoctorAvailability) *DoctorAvailabilityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorAvailabilityClient) DeleteOneID(id uuid.UUID) *DoctorAvailabilityDeleteOne {
	builder := c.Delete().Where(doctoravailability.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorAvailabilityDeleteOne{builder}
}

// Query returns a query builder for DoctorAvailability.
func (c *DoctorAvailabilityClient) Query() *DoctorAvailabilityQuery {
	return &DoctorAvailabilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctorAvailability},
		inters: c.Interceptors(),
	}
}

// Get returns a DoctorAvailability entity by its id.
func (c *DoctorAvailabilityClient) Get(ctx context.Context, id uuid.UUID) (*DoctorAvailability, error) {
	return c.Query().Where(doctoravailability.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorAvailabilityClient) GetX(ctx context.Context, id uuid.UUID) *DoctorAvailability {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoctorAvailabilityClient) Hooks() []Hook {
	return c.hooks.DoctorAvailability
}

// Interceptors returns the client interceptors.
func (c *DoctorAvailabilityClient) Interceptors() []Interceptor {
	return c.inters.DoctorAvailability
}

func (c *DoctorAvailabilityClient) mutate(ctx context.Context, m *DoctorAvailabilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorAvailabilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorAvailabilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorAvailabilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorAvailabilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DoctorAvailability mutation op: %q", m.Op())
	}
}

// MedicalRecordClient is a client for the MedicalRecord schema.
type MedicalRecordClient struct {
	config
}

// NewMedicalRecordClient returns a client for the MedicalRecord from the given config.
func NewMedicalRecordClient(c config) *MedicalRecordClient {
	return &MedicalRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medicalrecord.Hooks(f(g(h())))`.
func (c *MedicalRecordClient) Use(hooks ...Hook) {
	c.hooks.MedicalRecord = append(c.hooks.MedicalRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medicalrecord.Intercept(f(g(h())))`.
func (c *MedicalRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MedicalRecord = append(c.inters.MedicalRecord, interceptors...)
}

// Create returns a builder for creating a MedicalRecord entity.
func (c *MedicalRecordClient) Create() *MedicalRecordCreate {
	mutation := newMedicalRecordMutation(c.config, OpCreate)
	return &MedicalRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MedicalRecord entities.
func (c *MedicalRecordClient) CreateBulk(builders ...*MedicalRecordCreate) *MedicalRecordCreateBulk {
	return &MedicalRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicalRecordClient) MapCreateBulk(slice any, setFunc func(*MedicalRecordCreate, int)) *MedicalRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicalRecordCreateBulk{err: fmt.Errorf("calling to MedicalRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicalRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicalRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MedicalRecord.
func (c *MedicalRecordClient) Update() *MedicalRecordUpdate {
	mutation := newMedicalRecordMutation(c.config, OpUpdate)
	return &MedicalRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicalRecordClient) UpdateOne(_m *MedicalRecord) *MedicalRecordUpdateOne {
	mutation := newMedicalRecordMutation(c.config, OpUpdateOne, withMedicalRecord(_m))
	return &MedicalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicalRecordClient) UpdateOneID(id uuid.UUID) *MedicalRecordUpdateOne {
	mutation := newMedicalRecordMutation(c.config, OpUpdateOne, withMedicalRecordID(id))
	return &MedicalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MedicalRecord.
func (c *MedicalRecordClient) Delete() *MedicalRecordDelete {
	mutation := newMedicalRecordMutation(c.config, OpDelete)
	return &MedicalRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicalRecordClient) DeleteOne(_m *MedicalRecord) *MedicalRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicalRecordClient) DeleteOneID(id uuid.UUID) *MedicalRecordDeleteOne {
	builder := c.Delete().Where(medicalrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicalRecordDeleteOne{builder}
}

// Query returns a query builder for MedicalRecord.
func (c *MedicalRecordClient) Query() *MedicalRecordQuery {
	return &MedicalRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedicalRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MedicalRecord entity by its id.
func (c *MedicalRecordClient) Get(ctx context.Context, id uuid.UUID) (*MedicalRecord, error) {
	return c.Query().Where(medicalrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicalRecordClient) GetX(ctx context.Context, id uuid.UUID) *MedicalRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MedicalRecordClient) Hooks() []Hook {
	return c.hooks.MedicalRecord
}

// Interceptors returns the client interceptors.
func (c *MedicalRecordClient) Interceptors() []Interceptor {
	return c.inters.MedicalRecord
}

func (c *MedicalRecordClient) mutate(ctx context.Context, m *MedicalRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicalRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicalRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicalRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MedicalRecord mutation op: %q", m.Op())
	}
}

// MedicationClient is a client for the Medication schema.
type MedicationClient struct {
	config
}

// NewMedicationClient returns a client for the Medication from the given config.
func NewMedicationClient(c config) *MedicationClient {
	return &MedicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medication.Hooks(f(g(h())))`.
func (c *MedicationClient) Use(hooks ...Hook) {
	c.hooks.Medication = append(c.hooks.Medication, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medication.Intercept(f(g(h())))`.
func (c *MedicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Medication = append(c.inters.Medication, interceptors...)
}

// Create returns a builder for creating a Medication entity.
func (c *MedicationClient) Create() *MedicationCreate {
	mutation := newMedicationMutation(c.config, OpCreate)
	return &MedicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Medication entities.
func (c *MedicationClient) CreateBulk(builders ...*MedicationCreate) *MedicationCreateBulk {
	return &MedicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicationClient) MapCreateBulk(slice any, setFunc func(*MedicationCreate, int)) *MedicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicationCreateBulk{err: fmt.Errorf("calling to MedicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Medication.
func (c *MedicationClient) Update() *MedicationUpdate {
	mutation := newMedicationMutation(c.config, OpUpdate)
	return &MedicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicationClient) UpdateOne(_m *Medication) *MedicationUpdateOne {
	mutation := newMedicationMutation(c.config, OpUpdateOne, withMedication(_m))
	return &MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicationClient) UpdateOneID(id uuid.UUID) *MedicationUpdateOne {
	mutation := newMedicationMutation(c.config, OpUpdateOne, withMedicationID(id))
	return &MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Medication.
func (c *MedicationClient) Delete() *MedicationDelete {
	mutation := newMedicationMutation(c.config, OpDelete)
	return &MedicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicationClient) DeleteOne(_m *Medication) *MedicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicationClient) DeleteOneID(id uuid.UUID) *MedicationDeleteOne {
	builder := c.Delete().Where(medication.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicationDeleteOne{builder}
}

// Query returns a query builder for Medication.
func (c *MedicationClient) Query() *MedicationQuery {
	return &MedicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedication},
		inters: c.Interceptors(),
	}
}

// Get returns a Medication entity by its id.
func (c *MedicationClient) Get(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return c.Query().Where(medication.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicationClient) GetX(ctx context.Context, id uuid.UUID) *Medication {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MedicationClient) Hooks() []Hook {
	return c.hooks.Medication
}

// Interceptors returns the client interceptors.
func (c *MedicationClient) Interceptors() []Interceptor {
	return c.inters.Medication
}

func (c *MedicationClient) mutate(ctx context.Context, m *MedicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Medication mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id uuid.UUID) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id uuid.UUID) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id uuid.UUID) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id uuid.UUID) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Message mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// PrescriptionClient is a client for the Prescription schema.
type PrescriptionClient struct {
	config
}

// NewPrescriptionClient returns a client for the Prescription from the given config.
func NewPrescriptionClient(c config) *PrescriptionClient {
	return &PrescriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prescription.Hooks(f(g(h())))`.
func (c *PrescriptionClient) Use(hooks ...Hook) {
	c.hooks.Prescription = append(c.hooks.Prescription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prescription.Intercept(f(g(h())))`.
func (c *PrescriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Prescription = append(c.inters.Prescription, interceptors...)
}

// Create returns a builder for creating a Prescription entity.
func (c *PrescriptionClient) Create() *PrescriptionCreate {
	mutation := newPrescriptionMutation(c.config, OpCreate)
	return &PrescriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Prescription entities.
func (c *PrescriptionClient) CreateBulk(builders ...*PrescriptionCreate) *PrescriptionCreateBulk {
	return &PrescriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PrescriptionClient) MapCreateBulk(slice any, setFunc func(*PrescriptionCreate, int)) *PrescriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PrescriptionCreateBulk{err: fmt.Errorf("calling to PrescriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PrescriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PrescriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Prescription.
func (c *PrescriptionClient) Update() *PrescriptionUpdate {
	mutation := newPrescriptionMutation(c.config, OpUpdate)
	return &PrescriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PrescriptionClient) UpdateOne(_m *Prescription) *PrescriptionUpdateOne {
	mutation := newPrescriptionMutation(c.config, OpUpdateOne, withPrescription(_m))
	return &PrescriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PrescriptionClient) UpdateOneID(id uuid.UUID) *PrescriptionUpdateOne {
	mutation := newPrescriptionMutation(c.config, OpUpdateOne, withPrescriptionID(id))
	return &PrescriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Prescription.
func (c *PrescriptionClient) Delete() *PrescriptionDelete {
	mutation := newPrescriptionMutation(c.config, OpDelete)
	return &PrescriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PrescriptionClient) DeleteOne(_m *Prescription) *PrescriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PrescriptionClient) DeleteOneID(id uuid.UUID) *PrescriptionDeleteOne {
	builder := c.Delete().Where(prescription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PrescriptionDeleteOne{builder}
}

// Query returns a query builder for Prescription.
func (c *PrescriptionClient) Query() *PrescriptionQuery {
	return &PrescriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrescription},
		inters: c.Interceptors(),
	}
}

// Get returns a Prescription entity by its id.
func (c *PrescriptionClient) Get(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return c.Query().Where(prescription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PrescriptionClient) GetX(ctx context.Context, id uuid.UUID) *Prescription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PrescriptionClient) Hooks() []Hook {
	return c.hooks.Prescription
}

// Interceptors returns the client interceptors.
func (c *PrescriptionClient) Interceptors() []Interceptor {
	return c.inters.Prescription
}

func (c *PrescriptionClient) mutate(ctx context.Context, m *PrescriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PrescriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PrescriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PrescriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PrescriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Prescription mutation op: %q", m.Op())
	}
}

// TimeSlotClient is a client for the TimeSlot schema.
type TimeSlotClient struct {
	config
}

// NewTimeSlotClient returns a client for the TimeSlot from the given config.
func NewTimeSlotClient(c config) *TimeSlotClient {
	return &TimeSlotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timeslot.Hooks(f(g(h())))`.
func (c *TimeSlotClient) Use(hooks ...Hook) {
	c.hooks.TimeSlot = append(c.hooks.TimeSlot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timeslot.Intercept(f(g(h())))`.
func (c *TimeSlotClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimeSlot = append(c.inters.TimeSlot, interceptors...)
}

// Create returns a builder for creating a TimeSlot entity.
func (c *TimeSlotClient) Create() *TimeSlotCreate {
	mutation := newTimeSlotMutation(c.config, OpCreate)
	return &TimeSlotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimeSlot entities.
func (c *TimeSlotClient) CreateBulk(builders ...*TimeSlotCreate) *TimeSlotCreateBulk {
	return &TimeSlotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimeSlotClient) MapCreateBulk(slice any, setFunc func(*TimeSlotCreate, int)) *TimeSlotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimeSlotCreateBulk{err: fmt.Errorf("calling to TimeSlotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimeSlotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimeSlotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimeSlot.
func (c *TimeSlotClient) Update() *TimeSlotUpdate {
	mutation := newTimeSlotMutation(c.config, OpUpdate)
	return &TimeSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimeSlotClient) UpdateOne(_m *TimeSlot) *TimeSlotUpdateOne {
	mutation := newTimeSlotMutation(c.config, OpUpdateOne, withTimeSlot(_m))
	return &TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimeSlotClient) UpdateOneID(id uuid.UUID) *TimeSlotUpdateOne {
	mutation := newTimeSlotMutation(c.config, OpUpdateOne, withTimeSlotID(id))
	return &TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimeSlot.
func (c *TimeSlotClient) Delete() *TimeSlotDelete {
	mutation := newTimeSlotMutation(c.config, OpDelete)
	return &TimeSlotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimeSlotClient) DeleteOne(_m *TimeSlot) *TimeSlotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimeSlotClient) DeleteOneID(id uuid.UUID) *TimeSlotDeleteOne {
	builder := c.Delete().Where(timeslot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimeSlotDeleteOne{builder}
}

// Query returns a query builder for TimeSlot.
func (c *TimeSlotClient) Query() *TimeSlotQuery {
	return &TimeSlotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimeSlot},
		inters: c.Interceptors(),
	}
}

// Get returns a TimeSlot entity by its id.
func (c *TimeSlotClient) Get(ctx context.Context, id uuid.UUID) (*TimeSlot, error) {
	return c.Query().Where(timeslot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimeSlotClient) GetX(ctx context.Context, id uuid.UUID) *TimeSlot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TimeSlotClient) Hooks() []Hook {
	return c.hooks.TimeSlot
}

// Interceptors returns the client interceptors.
func (c *TimeSlotClient) Interceptors() []Interceptor {
	return c.inters.TimeSlot
}

func (c *TimeSlotClient) mutate(ctx context.Context, m *TimeSlotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimeSlotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimeSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimeSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimeSlotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TimeSlot mutation op: %q", m.Op())
	}
}

// TreatmentPlanClient is a client for the TreatmentPlan schema.
type TreatmentPlanClient struct {
	config
}

// NewTreatmentPlanClient returns a client for the TreatmentPlan from the given config.
func NewTreatmentPlanClient(c config) *TreatmentPlanClient {
	return &TreatmentPlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `treatmentplan.Hooks(f(g(h())))`.
func (c *TreatmentPlanClient) Use(hooks ...Hook) {
	c.hooks.TreatmentPlan = append(c.hooks.TreatmentPlan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `treatmentplan.Intercept(f(g(h())))`.
func (c *TreatmentPlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.TreatmentPlan = append(c.inters.TreatmentPlan, interceptors...)
}

// Create returns a builder for creating a TreatmentPlan entity.
func (c *TreatmentPlanClient) Create() *TreatmentPlanCreate {
	mutation := newTreatmentPlanMutation(c.config, OpCreate)
	return &TreatmentPlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TreatmentPlan entities.
func (c *TreatmentPlanClient) CreateBulk(builders ...*TreatmentPlanCreate) *TreatmentPlanCreateBulk {
	return &TreatmentPlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TreatmentPlanClient) MapCreateBulk(slice any, setFunc func(*TreatmentPlanCreate, int)) *TreatmentPlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TreatmentPlanCreateBulk{err: fmt.Errorf("calling to TreatmentPlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TreatmentPlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TreatmentPlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TreatmentPlan.
func (c *TreatmentPlanClient) Update() *TreatmentPlanUpdate {
	mutation := newTreatmentPlanMutation(c.config, OpUpdate)
	return &TreatmentPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TreatmentPlanClient) UpdateOne(_m *TreatmentPlan) *TreatmentPlanUpdateOne {
	mutation := newTreatmentPlanMutation(c.config, OpUpdateOne, withTreatmentPlan(_m))
	return &TreatmentPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TreatmentPlanClient) UpdateOneID(id uuid.UUID) *TreatmentPlanUpdateOne {
	mutation := newTreatmentPlanMutation(c.config, OpUpdateOne, withTreatmentPlanID(id))
	return &TreatmentPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TreatmentPlan.
func (c *TreatmentPlanClient) Delete() *TreatmentPlanDelete {
	mutation := newTreatmentPlanMutation(c.config, OpDelete)
	return &TreatmentPlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TreatmentPlanClient) DeleteOne(_m *TreatmentPlan) *TreatmentPlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TreatmentPlanClient) DeleteOneID(id uuid.UUID) *TreatmentPlanDeleteOne {
	builder := c.Delete().Where(treatmentplan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TreatmentPlanDeleteOne{builder}
}

// Query returns a query builder for TreatmentPlan.
func (c *TreatmentPlanClient) Query() *TreatmentPlanQuery {
	return &TreatmentPlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTreatmentPlan},
		inters: c.Interceptors(),
	}
}

// Get returns a TreatmentPlan entity by its id.
func (c *TreatmentPlanClient) Get(ctx context.Context, id uuid.UUID) (*TreatmentPlan, error) {
	return c.Query().Where(treatmentplan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TreatmentPlanClient) GetX(ctx context.Context, id uuid.UUID) *TreatmentPlan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TreatmentPlanClient) Hooks() []Hook {
	return c.hooks.TreatmentPlan
}

// Interceptors returns the client interceptors.
func (c *TreatmentPlanClient) Interceptors() []Interceptor {
	return c.inters.TreatmentPlan
}

func (c *TreatmentPlanClient) mutate(ctx context.Context, m *TreatmentPlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TreatmentPlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TreatmentPlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TreatmentPlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TreatmentPlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TreatmentPlan mutation op: %q", m.Op())
	}
}

// VaccinationClient is a client for the Vaccination schema.
type VaccinationClient struct {
	config
}

// NewVaccinationClient returns a client for the Vaccination from the given config.
func NewVaccinationClient(c config) *VaccinationClient {
	return &VaccinationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vaccination.Hooks(f(g(h())))`.
func (c *VaccinationClient) Use(hooks ...Hook) {
	c.hooks.Vaccination = append(c.hooks.Vaccination, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vaccination.Intercept(f(g(h())))`.
func (c *VaccinationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vaccination = append(c.inters.Vaccination, interceptors...)
}

// Create returns a builder for creating a Vaccination entity.
func (c *VaccinationClient) Create() *VaccinationCreate {
	mutation := newVaccinationMutation(c.config, OpCreate)
	return &VaccinationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vaccination entities.
func (c *VaccinationClient) CreateBulk(builders ...*VaccinationCreate) *VaccinationCreateBulk {
	return &VaccinationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VaccinationClient) MapCreateBulk(slice any, setFunc func(*VaccinationCreate, int)) *VaccinationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VaccinationCreateBulk{err: fmt.Errorf("calling to VaccinationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VaccinationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VaccinationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vaccination.
func (c *VaccinationClient) Update() *VaccinationUpdate {
	mutation := newVaccinationMutation(c.config, OpUpdate)
	return &VaccinationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VaccinationClient) UpdateOne(_m *Vaccination) *VaccinationUpdateOne {
	mutation := newVaccinationMutation(c.config, OpUpdateOne, withVaccination(_m))
	return &VaccinationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VaccinationClient) UpdateOneID(id uuid.UUID) *VaccinationUpdateOne {
	mutation := newVaccinationMutation(c.config, OpUpdateOne, withVaccinationID(id))
	return &VaccinationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vaccination.
func (c *VaccinationClient) Delete() *VaccinationDelete {
	mutation := newVaccinationMutation(c.config, OpDelete)
	return &VaccinationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VaccinationClient) DeleteOne(_m *Vaccination) *VaccinationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VaccinationClient) DeleteOneID(id uuid.UUID) *VaccinationDeleteOne {
	builder := c.Delete().Where(vaccination.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VaccinationDeleteOne{builder}
}

// Query returns a query builder for Vaccination.
func (c *VaccinationClient) Query() *VaccinationQuery {
	return &VaccinationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVaccination},
		inters: c.Interceptors(),
	}
}

// Get returns a Vaccination entity by its id.
func (c *VaccinationClient) Get(ctx context.Context, id uuid.UUID) (*Vaccination, error) {
	return c.Query().Where(vaccination.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VaccinationClient) GetX(ctx context.Context, id uuid.UUID) *Vaccination {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VaccinationClient) Hooks() []Hook {
	return c.hooks.Vaccination
}

// Interceptors returns the client interceptors.
func (c *VaccinationClient) Interceptors() []Interceptor {
	return c.inters.Vaccination
}

func (c *VaccinationClient) mutate(ctx context.Context, m *VaccinationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VaccinationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VaccinationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VaccinationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VaccinationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Vaccination mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appointment, Billing, Department, Doctor, DoctorAvailability, MedicalRecord,
		Medication, Message, Patient, Prescription, TimeSlot, TreatmentPlan,
		Vaccination []ent.Hook
	}
	inters struct {
		Appointment, Billing, Department, Doctor, DoctorAvailability, MedicalRecord,
		Medication, Message, Patient, Prescription, TimeSlot, TreatmentPlan,
		Vaccination []ent.Interceptor
	}
)
