package database

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"homefinder/internal/models"
	"homefinder/internal/search"
)

// PostgresStore implements Store on database/sql with hand-written SQL.
type PostgresStore struct {
	conn *sql.DB
}

func NewPostgresStore(host, port, user, password, dbname string) (*PostgresStore, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}

	return &PostgresStore{conn: conn}, nil
}

func (s *PostgresStore) Close() error {
	return s.conn.Close()
}

func (s *PostgresStore) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS properties (
		id VARCHAR(36) PRIMARY KEY,
		owner_id VARCHAR(36) NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		property_type VARCHAR(20) NOT NULL,
		listing_type VARCHAR(10) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		price DECIMAL(14, 2) NOT NULL,
		address TEXT NOT NULL,
		city VARCHAR(100) NOT NULL,
		state VARCHAR(100) NOT NULL,
		zip_code VARCHAR(20),
		country VARCHAR(2),
		latitude DECIMAL(9, 6),
		longitude DECIMAL(9, 6),
		bedrooms INTEGER,
		bathrooms DECIMAL(3, 1),
		sqft INTEGER,
		lot_size INTEGER,
		year_built INTEGER,
		parking_spaces INTEGER,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_properties_created_at ON properties(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_properties_status ON properties(status);
	CREATE INDEX IF NOT EXISTS idx_properties_owner ON properties(owner_id);
	CREATE INDEX IF NOT EXISTS idx_properties_price ON properties(price);
	CREATE INDEX IF NOT EXISTS idx_properties_city ON properties(city);
	CREATE INDEX IF NOT EXISTS idx_properties_types ON properties(property_type, listing_type);

	CREATE TABLE IF NOT EXISTS property_images (
		id BIGSERIAL PRIMARY KEY,
		property_id VARCHAR(36) NOT NULL,
		url TEXT NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_property_images_property ON property_images(property_id);

	CREATE TABLE IF NOT EXISTS property_amenities (
		id BIGSERIAL PRIMARY KEY,
		property_id VARCHAR(36) NOT NULL,
		amenity VARCHAR(50) NOT NULL,
		UNIQUE (property_id, amenity)
	);
	CREATE INDEX IF NOT EXISTS idx_property_amenities_amenity ON property_amenities(amenity);

	CREATE TABLE IF NOT EXISTS enquiries (
		id VARCHAR(36) PRIMARY KEY,
		property_id VARCHAR(36) NOT NULL,
		sender_id VARCHAR(36) NOT NULL,
		owner_id VARCHAR(36) NOT NULL,
		message TEXT NOT NULL,
		phone VARCHAR(30),
		preferred_date VARCHAR(10),
		status VARCHAR(10) NOT NULL DEFAULT 'unread',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_enquiries_sender ON enquiries(sender_id);
	CREATE INDEX IF NOT EXISTS idx_enquiries_owner ON enquiries(owner_id);

	CREATE TABLE IF NOT EXISTS saved_properties (
		user_id VARCHAR(36) NOT NULL,
		property_id VARCHAR(36) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		PRIMARY KEY (user_id, property_id)
	);

	CREATE TABLE IF NOT EXISTS profiles (
		user_id VARCHAR(36) PRIMARY KEY,
		role VARCHAR(10) NOT NULL DEFAULT 'buyer',
		email VARCHAR(255),
		full_name VARCHAR(200),
		avatar_url TEXT,
		phone VARCHAR(30),
		bio TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS stats_snapshots (
		id BIGSERIAL PRIMARY KEY,
		snapshot_at TIMESTAMP NOT NULL UNIQUE,
		total_users BIGINT NOT NULL,
		total_listings BIGINT NOT NULL,
		active_listings BIGINT NOT NULL,
		total_enquiries BIGINT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err := s.conn.Exec(query)
	return err
}

const propertyColumns = `id, owner_id, title, description, property_type, listing_type, status,
	price, address, city, state, zip_code, country, latitude, longitude,
	bedrooms, bathrooms, sqft, lot_size, year_built, parking_spaces, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*models.Property, error) {
	var p models.Property
	var description, zipCode, country sql.NullString
	var lat, lng, bathrooms sql.NullFloat64
	var bedrooms, sqft, lotSize, yearBuilt, parking sql.NullInt64

	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &description, &p.PropertyType, &p.ListingType, &p.Status,
		&p.Price, &p.Address, &p.City, &p.State, &zipCode, &country, &lat, &lng,
		&bedrooms, &bathrooms, &sqft, &lotSize, &yearBuilt, &parking, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Description = description.String
	p.ZipCode = zipCode.String
	p.Country = country.String
	if lat.Valid {
		p.Latitude = &lat.Float64
	}
	if lng.Valid {
		p.Longitude = &lng.Float64
	}
	if bedrooms.Valid {
		v := int(bedrooms.Int64)
		p.Bedrooms = &v
	}
	if bathrooms.Valid {
		p.Bathrooms = &bathrooms.Float64
	}
	if sqft.Valid {
		v := int(sqft.Int64)
		p.Sqft = &v
	}
	if lotSize.Valid {
		v := int(lotSize.Int64)
		p.LotSize = &v
	}
	if yearBuilt.Valid {
		v := int(yearBuilt.Int64)
		p.YearBuilt = &v
	}
	if parking.Valid {
		v := int(parking.Int64)
		p.ParkingSpaces = &v
	}
	p.Amenities = []string{}
	p.Images = []string{}
	return &p, nil
}

func (s *PostgresStore) queryProperties(query string, args ...interface{}) ([]models.Property, error) {
	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := s.hydrate(properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *PostgresStore) hydrate(properties []models.Property) error {
	if len(properties) == 0 {
		return nil
	}
	ids := make([]string, len(properties))
	index := make(map[string]*models.Property, len(properties))
	for i := range properties {
		ids[i] = properties[i].ID
		index[properties[i].ID] = &properties[i]
	}

	rows, err := s.conn.Query(
		`SELECT property_id, amenity FROM property_amenities WHERE property_id = ANY($1) ORDER BY id ASC`,
		pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var propertyID, amenity string
		if err := rows.Scan(&propertyID, &amenity); err != nil {
			return err
		}
		p := index[propertyID]
		p.Amenities = append(p.Amenities, amenity)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	imgRows, err := s.conn.Query(
		`SELECT property_id, url FROM property_images WHERE property_id = ANY($1) ORDER BY sort_order ASC, id ASC`,
		pq.Array(ids))
	if err != nil {
		return err
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var propertyID, url string
		if err := imgRows.Scan(&propertyID, &url); err != nil {
			return err
		}
		p := index[propertyID]
		p.Images = append(p.Images, url)
	}
	return imgRows.Err()
}

func (s *PostgresStore) SearchProperties(f search.Filters) ([]models.Property, int64, error) {
	where, args := buildPropertyWhere(f)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM properties %s", where)
	if err := s.conn.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM properties %s ORDER BY %s LIMIT %d OFFSET %d",
		propertyColumns, where, orderClause(f.Sort), f.Limit, f.Offset())
	properties, err := s.queryProperties(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (s *PostgresStore) FeaturedProperties(n int) ([]models.Property, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM properties WHERE status = $1 ORDER BY created_at DESC, id ASC LIMIT %d",
		propertyColumns, n)
	return s.queryProperties(query, models.PropertyStatusActive)
}

func (s *PostgresStore) OwnerProperties(ownerID string, f search.Filters) ([]models.Property, error) {
	where, args := buildOwnerWhere(ownerID, f)
	query := fmt.Sprintf(
		"SELECT %s FROM properties %s ORDER BY created_at DESC, id ASC",
		propertyColumns, where)
	return s.queryProperties(query, args...)
}

func (s *PostgresStore) AllProperties(limit, offset int) ([]models.Property, int64, error) {
	var total int64
	if err := s.conn.QueryRow("SELECT COUNT(*) FROM properties").Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"SELECT %s FROM properties ORDER BY created_at DESC, id ASC LIMIT %d OFFSET %d",
		propertyColumns, limit, offset)
	properties, err := s.queryProperties(query)
	if err != nil {
		return nil, 0, err
	}
	for i := range properties {
		if owner, err := s.GetProfile(properties[i].OwnerID); err == nil {
			properties[i].Owner = owner
		}
	}
	return properties, total, nil
}

func (s *PostgresStore) GetProperty(id string) (*models.Property, error) {
	query := fmt.Sprintf("SELECT %s FROM properties WHERE id = $1", propertyColumns)
	p, err := scanProperty(s.conn.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	batch := []models.Property{*p}
	if err := s.hydrate(batch); err != nil {
		return nil, err
	}
	result := batch[0]

	owner, err := s.GetProfile(result.OwnerID)
	if err == nil {
		result.Owner = owner
	}
	return &result, nil
}

func (s *PostgresStore) CreateProperty(p *models.Property) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = models.PropertyStatusDraft
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO properties (
			id, owner_id, title, description, property_type, listing_type, status,
			price, address, city, state, zip_code, country, latitude, longitude,
			bedrooms, bathrooms, sqft, lot_size, year_built, parking_spaces
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
		p.ID, p.OwnerID, p.Title, p.Description, p.PropertyType, p.ListingType, p.Status,
		p.Price, p.Address, p.City, p.State, p.ZipCode, p.Country, p.Latitude, p.Longitude,
		p.Bedrooms, p.Bathrooms, p.Sqft, p.LotSize, p.YearBuilt, p.ParkingSpaces)
	if err != nil {
		return translatePQError(err)
	}

	if err := insertAmenitiesTx(tx, p.ID, p.Amenities); err != nil {
		return err
	}
	if err := insertImagesTx(tx, p.ID, p.Images, 0); err != nil {
		return err
	}
	return tx.Commit()
}

func insertAmenitiesTx(tx *sql.Tx, propertyID string, amenities []string) error {
	for _, a := range amenities {
		if _, err := tx.Exec(
			`INSERT INTO property_amenities (property_id, amenity) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			propertyID, a); err != nil {
			return err
		}
	}
	return nil
}

func insertImagesTx(tx *sql.Tx, propertyID string, urls []string, startOrder int) error {
	for i, u := range urls {
		if _, err := tx.Exec(
			`INSERT INTO property_images (property_id, url, sort_order) VALUES ($1, $2, $3)`,
			propertyID, u, startOrder+i); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) UpdateProperty(id string, fields map[string]interface{}, amenities, images []string) (*models.Property, error) {
	tx, err := s.conn.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Deterministic column order keeps the statement stable for a given
	// field set.
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	sets := make([]string, 0, len(cols)+1)
	args := make([]interface{}, 0, len(cols)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	res, err := tx.Exec(
		fmt.Sprintf("UPDATE properties SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)),
		args...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if amenities != nil {
		if _, err := tx.Exec(`DELETE FROM property_amenities WHERE property_id = $1`, id); err != nil {
			return nil, err
		}
		if err := insertAmenitiesTx(tx, id, amenities); err != nil {
			return nil, err
		}
	}
	if images != nil {
		if _, err := tx.Exec(`DELETE FROM property_images WHERE property_id = $1`, id); err != nil {
			return nil, err
		}
		if err := insertImagesTx(tx, id, images, 0); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.GetProperty(id)
}

func (s *PostgresStore) DeleteProperty(id string) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	for _, stmt := range []string{
		`DELETE FROM property_amenities WHERE property_id = $1`,
		`DELETE FROM property_images WHERE property_id = $1`,
		`DELETE FROM saved_properties WHERE property_id = $1`,
	} {
		if _, err := tx.Exec(stmt, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) BulkInsertProperties(props []models.Property) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range props {
		p := &props[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		_, err := tx.Exec(`
			INSERT INTO properties (
				id, owner_id, title, description, property_type, listing_type, status,
				price, address, city, state, zip_code, country, latitude, longitude,
				bedrooms, bathrooms, sqft, lot_size, year_built, parking_spaces
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)`,
			p.ID, p.OwnerID, p.Title, p.Description, p.PropertyType, p.ListingType, p.Status,
			p.Price, p.Address, p.City, p.State, p.ZipCode, p.Country, p.Latitude, p.Longitude,
			p.Bedrooms, p.Bathrooms, p.Sqft, p.LotSize, p.YearBuilt, p.ParkingSpaces)
		if err != nil {
			return translatePQError(err)
		}
		if err := insertAmenitiesTx(tx, p.ID, p.Amenities); err != nil {
			return err
		}
		if err := insertImagesTx(tx, p.ID, p.Images, 0); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) AppendPropertyImages(propertyID string, urls []string) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM properties WHERE id = $1)`, propertyID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}

	var existing, maxOrder int
	if err := tx.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(sort_order), -1) FROM property_images WHERE property_id = $1`,
		propertyID).Scan(&existing, &maxOrder); err != nil {
		return err
	}
	if existing+len(urls) > MaxImagesPerProperty {
		return ErrTooManyImages
	}
	if err := insertImagesTx(tx, propertyID, urls, maxOrder+1); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *PostgresStore) RemovePropertyImage(propertyID, url string) error {
	res, err := s.conn.Exec(
		`DELETE FROM property_images WHERE property_id = $1 AND url = $2`, propertyID, url)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) CreateEnquiry(e *models.Enquiry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = models.EnquiryStatusUnread
	}
	_, err := s.conn.Exec(`
		INSERT INTO enquiries (id, property_id, sender_id, owner_id, message, phone, preferred_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.PropertyID, e.SenderID, e.OwnerID, e.Message, e.Phone, e.PreferredDate, e.Status)
	return translatePQError(err)
}

const enquiryColumns = `id, property_id, sender_id, owner_id, message, phone, preferred_date, status, created_at, updated_at`

func scanEnquiry(row rowScanner) (*models.Enquiry, error) {
	var e models.Enquiry
	var phone, preferredDate sql.NullString
	err := row.Scan(&e.ID, &e.PropertyID, &e.SenderID, &e.OwnerID, &e.Message,
		&phone, &preferredDate, &e.Status, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if phone.Valid {
		e.Phone = &phone.String
	}
	if preferredDate.Valid {
		e.PreferredDate = &preferredDate.String
	}
	return &e, nil
}

func (s *PostgresStore) ListEnquiries(v models.Viewer) ([]models.Enquiry, error) {
	query := fmt.Sprintf("SELECT %s FROM enquiries", enquiryColumns)
	var args []interface{}
	switch v.Role {
	case models.RoleAdmin:
	case models.RoleOwner:
		query += " WHERE owner_id = $1"
		args = append(args, v.UserID)
	default:
		query += " WHERE sender_id = $1"
		args = append(args, v.UserID)
	}
	query += " ORDER BY created_at DESC, id ASC"

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enquiries []models.Enquiry
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range enquiries {
		if property, err := s.GetProperty(enquiries[i].PropertyID); err == nil {
			enquiries[i].Property = property
		}
		if sender, err := s.GetProfile(enquiries[i].SenderID); err == nil {
			enquiries[i].Sender = sender
		}
	}
	return enquiries, nil
}

func (s *PostgresStore) GetEnquiry(id string) (*models.Enquiry, error) {
	query := fmt.Sprintf("SELECT %s FROM enquiries WHERE id = $1", enquiryColumns)
	e, err := scanEnquiry(s.conn.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *PostgresStore) UpdateEnquiryStatus(id string, status models.EnquiryStatus) error {
	res, err := s.conn.Exec(
		`UPDATE enquiries SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) PurgeArchivedEnquiries(before time.Time) (int64, error) {
	res, err := s.conn.Exec(
		`DELETE FROM enquiries WHERE status = $1 AND updated_at < $2`,
		models.EnquiryStatusArchived, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *PostgresStore) SaveListing(userID, propertyID string) error {
	_, err := s.conn.Exec(
		`INSERT INTO saved_properties (user_id, property_id) VALUES ($1, $2)`,
		userID, propertyID)
	return translatePQError(err)
}

func (s *PostgresStore) UnsaveListing(userID, propertyID string) error {
	_, err := s.conn.Exec(
		`DELETE FROM saved_properties WHERE user_id = $1 AND property_id = $2`,
		userID, propertyID)
	return err
}

func (s *PostgresStore) ListSaved(userID string) ([]models.SavedProperty, error) {
	rows, err := s.conn.Query(
		`SELECT user_id, property_id, created_at FROM saved_properties
		 WHERE user_id = $1 ORDER BY created_at DESC, property_id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []models.SavedProperty
	for rows.Next() {
		var sp models.SavedProperty
		if err := rows.Scan(&sp.UserID, &sp.PropertyID, &sp.CreatedAt); err != nil {
			return nil, err
		}
		saved = append(saved, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range saved {
		if property, err := s.GetProperty(saved[i].PropertyID); err == nil {
			saved[i].Property = property
		}
	}
	return saved, nil
}

func (s *PostgresStore) GetProfile(userID string) (*models.Profile, error) {
	var p models.Profile
	var email, fullName, avatarURL, phone, bio sql.NullString
	err := s.conn.QueryRow(
		`SELECT user_id, role, email, full_name, avatar_url, phone, bio, created_at, updated_at
		 FROM profiles WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.Role, &email, &fullName, &avatarURL, &phone, &bio, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Email = email.String
	p.FullName = fullName.String
	if avatarURL.Valid {
		p.AvatarURL = &avatarURL.String
	}
	if phone.Valid {
		p.Phone = &phone.String
	}
	if bio.Valid {
		p.Bio = &bio.String
	}
	return &p, nil
}

func (s *PostgresStore) UpsertProfile(p *models.Profile) error {
	if p.Role == "" {
		p.Role = models.RoleBuyer
	}
	_, err := s.conn.Exec(`
		INSERT INTO profiles (user_id, role, email, full_name, avatar_url, phone, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			role = EXCLUDED.role,
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			avatar_url = EXCLUDED.avatar_url,
			phone = EXCLUDED.phone,
			bio = EXCLUDED.bio,
			updated_at = NOW()`,
		p.UserID, p.Role, p.Email, p.FullName, p.AvatarURL, p.Phone, p.Bio)
	return err
}

func (s *PostgresStore) UpdateProfile(userID string, fields map[string]interface{}) (*models.Profile, error) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	sets := make([]string, 0, len(cols)+1)
	args := make([]interface{}, 0, len(cols)+1)
	for i, col := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, userID)

	res, err := s.conn.Exec(
		fmt.Sprintf("UPDATE profiles SET %s WHERE user_id = $%d", strings.Join(sets, ", "), len(args)),
		args...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.GetProfile(userID)
}

func (s *PostgresStore) SetRole(userID string, role models.Role) error {
	res, err := s.conn.Exec(
		`UPDATE profiles SET role = $1, updated_at = NOW() WHERE user_id = $2`, role, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) PlatformStats() (*models.PlatformStats, error) {
	var stats models.PlatformStats
	err := s.conn.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM profiles),
			(SELECT COUNT(*) FROM properties),
			(SELECT COUNT(*) FROM properties WHERE status = $1),
			(SELECT COUNT(*) FROM enquiries)`,
		models.PropertyStatusActive).
		Scan(&stats.TotalUsers, &stats.TotalListings, &stats.ActiveListings, &stats.TotalEnquiries)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *PostgresStore) SaveStatsSnapshot(snap *models.StatsSnapshot) error {
	_, err := s.conn.Exec(`
		INSERT INTO stats_snapshots (snapshot_at, total_users, total_listings, active_listings, total_enquiries)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (snapshot_at) DO UPDATE SET
			total_users = EXCLUDED.total_users,
			total_listings = EXCLUDED.total_listings,
			active_listings = EXCLUDED.active_listings,
			total_enquiries = EXCLUDED.total_enquiries`,
		snap.SnapshotAt, snap.TotalUsers, snap.TotalListings, snap.ActiveListings, snap.TotalEnquiries)
	return err
}

func (s *PostgresStore) RecentStatsSnapshots(limit int) ([]models.StatsSnapshot, error) {
	rows, err := s.conn.Query(`
		SELECT id, snapshot_at, total_users, total_listings, active_listings, total_enquiries, created_at
		FROM stats_snapshots ORDER BY snapshot_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []models.StatsSnapshot
	for rows.Next() {
		var snap models.StatsSnapshot
		if err := rows.Scan(&snap.ID, &snap.SnapshotAt, &snap.TotalUsers, &snap.TotalListings,
			&snap.ActiveListings, &snap.TotalEnquiries, &snap.CreatedAt); err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// translatePQError maps PostgreSQL unique violations (SQLSTATE 23505) onto
// ErrDuplicate.
func translatePQError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
