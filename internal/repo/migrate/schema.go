// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "time_slot_id", Type: field.TypeUUID, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 30},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "confirmed", "completed", "cancelled"}, Default: "scheduled"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_doctor_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_doctor_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[9], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[9]},
			},
		},
	}
	// BillingsColumns holds the columns for the "billings" table.
	BillingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "paid", Type: field.TypeBool, Default: false},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
	}
	// BillingsTable holds the schema information for the "billings" table.
	BillingsTable = &schema.Table{
		Name:       "billings",
		Columns:    BillingsColumns,
		PrimaryKey: []*schema.Column{BillingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "billing_patient_id_paid",
				Unique:  false,
				Columns: []*schema.Column{BillingsColumns[2], BillingsColumns[5]},
			},
			{
				Name:    "billing_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BillingsColumns[2], BillingsColumns[1]},
			},
		},
	}
	// DepartmentsColumns holds the columns for the "departments" table.
	DepartmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// DepartmentsTable holds the schema information for the "departments" table.
	DepartmentsTable = &schema.Table{
		Name:       "departments",
		Columns:    DepartmentsColumns,
		PrimaryKey: []*schema.Column{DepartmentsColumns[0]},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "specialization", Type: field.TypeString, Size: 100},
		{Name: "experience_years", Type: field.TypeInt, Default: 0},
		{Name: "bio", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "department_id", Type: field.TypeUUID, Nullable: true},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctors_departments_doctors",
				Columns:    []*schema.Column{DoctorsColumns[8]},
				RefColumns: []*schema.Column{DepartmentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_specialization",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[5]},
			},
			{
				Name:    "doctor_department_id",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[8]},
			},
		},
	}
	// DoctorAvailabilitiesColumns holds the columns for the "doctor_availabilities" table.
	DoctorAvailabilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "day_of_week", Type: field.TypeInt8},
		{Name: "start_hour", Type: field.TypeInt8},
		{Name: "start_minute", Type: field.TypeInt8},
		{Name: "end_hour", Type: field.TypeInt8},
		{Name: "end_minute", Type: field.TypeInt8},
	}
	// DoctorAvailabilitiesTable holds the schema information for the "doctor_availabilities" table.
	DoctorAvailabilitiesTable = &schema.Table{
		Name:       "doctor_availabilities",
		Columns:    DoctorAvailabilitiesColumns,
		PrimaryKey: []*schema.Column{DoctorAvailabilitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctoravailability_doctor_id_day_of_week",
				Unique:  false,
				Columns: []*schema.Column{DoctorAvailabilitiesColumns[3], DoctorAvailabilitiesColumns[4]},
			},
		},
	}
	// MedicalRecordsColumns holds the columns for the "medical_records" table.
	MedicalRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "diagnosis", Type: field.TypeString, Size: 255},
		{Name: "treatment", Type: field.TypeString, Size: 2147483647},
	}
	// MedicalRecordsTable holds the schema information for the "medical_records" table.
	MedicalRecordsTable = &schema.Table{
		Name:       "medical_records",
		Columns:    MedicalRecordsColumns,
		PrimaryKey: []*schema.Column{MedicalRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medicalrecord_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MedicalRecordsColumns[2], MedicalRecordsColumns[1]},
			},
		},
	}
	// MedicationsColumns holds the columns for the "medications" table.
	MedicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "dosage_instructions", Type: field.TypeString, Size: 2147483647},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
	}
	// MedicationsTable holds the schema information for the "medications" table.
	MedicationsTable = &schema.Table{
		Name:       "medications",
		Columns:    MedicationsColumns,
		PrimaryKey: []*schema.Column{MedicationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medication_patient_id",
				Unique:  false,
				Columns: []*schema.Column{MedicationsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sender_patient_id", Type: field.TypeUUID, Nullable: true},
		{Name: "sender_doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_sender_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2], MessagesColumns[1]},
			},
			{
				Name:    "message_sender_doctor_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[3], MessagesColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "date_of_birth", Type: field.TypeTime},
		{Name: "address", Type: field.TypeString, Size: 2147483647},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 30},
		{Name: "gender", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "last_visit", Type: field.TypeTime, Nullable: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4]},
			},
			{
				Name:    "patient_phone",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[8]},
			},
		},
	}
	// PrescriptionsColumns holds the columns for the "prescriptions" table.
	PrescriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "medication", Type: field.TypeString, Size: 255},
		{Name: "dosage", Type: field.TypeString, Size: 255},
		{Name: "instructions", Type: field.TypeString, Size: 2147483647},
	}
	// PrescriptionsTable holds the schema information for the "prescriptions" table.
	PrescriptionsTable = &schema.Table{
		Name:       "prescriptions",
		Columns:    PrescriptionsColumns,
		PrimaryKey: []*schema.Column{PrescriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prescription_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[2], PrescriptionsColumns[1]},
			},
			{
				Name:    "prescription_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[3]},
			},
		},
	}
	// TimeSlotsColumns holds the columns for the "time_slots" table.
	TimeSlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "available", Type: field.TypeBool, Default: true},
	}
	// TimeSlotsTable holds the schema information for the "time_slots" table.
	TimeSlotsTable = &schema.Table{
		Name:       "time_slots",
		Columns:    TimeSlotsColumns,
		PrimaryKey: []*schema.Column{TimeSlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "timeslot_doctor_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{TimeSlotsColumns[3], TimeSlotsColumns[4]},
			},
			{
				Name:    "timeslot_doctor_id_available_start_time",
				Unique:  false,
				Columns: []*schema.Column{TimeSlotsColumns[3], TimeSlotsColumns[6], TimeSlotsColumns[4]},
			},
		},
	}
	// TreatmentPlansColumns holds the columns for the "treatment_plans" table.
	TreatmentPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
	}
	// TreatmentPlansTable holds the schema information for the "treatment_plans" table.
	TreatmentPlansTable = &schema.Table{
		Name:       "treatment_plans",
		Columns:    TreatmentPlansColumns,
		PrimaryKey: []*schema.Column{TreatmentPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "treatmentplan_patient_id_start_date",
				Unique:  false,
				Columns: []*schema.Column{TreatmentPlansColumns[3], TreatmentPlansColumns[5]},
			},
		},
	}
	// VaccinationsColumns holds the columns for the "vaccinations" table.
	VaccinationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "vaccine_name", Type: field.TypeString, Size: 200},
		{Name: "date_given", Type: field.TypeTime},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// VaccinationsTable holds the schema information for the "vaccinations" table.
	VaccinationsTable = &schema.Table{
		Name:       "vaccinations",
		Columns:    VaccinationsColumns,
		PrimaryKey: []*schema.Column{VaccinationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vaccination_patient_id_date_given",
				Unique:  false,
				Columns: []*schema.Column{VaccinationsColumns[2], VaccinationsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		BillingsTable,
		DepartmentsTable,
		DoctorsTable,
		DoctorAvailabilitiesTable,
		MedicalRecordsTable,
		MedicationsTable,
		MessagesTable,
		PatientsTable,
		PrescriptionsTable,
		TimeSlotsTable,
		TreatmentPlansTable,
		VaccinationsTable,
	}
)

func init() {
	DoctorsTable.ForeignKeys[0].RefTable = DepartmentsTable
}
